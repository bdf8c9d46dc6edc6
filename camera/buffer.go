package camera

import "sync"

// FrameBuffer holds the single most recent encoded annotated frame. The
// capture loop is the only writer; any number of streaming clients read
// concurrently. A reader always sees either nothing (not yet published)
// or one complete frame - never a partial write.
type FrameBuffer struct {
	mu     sync.RWMutex
	frame  []byte
	closed bool
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Publish replaces the current frame with a copy of jpeg. Publishing
// after Close is a no-op. The copy matters: the encoder's backing buffer
// is reused by the capture loop.
func (b *FrameBuffer) Publish(jpeg []byte) {
	frame := make([]byte, len(jpeg))
	copy(frame, jpeg)

	b.mu.Lock()
	if !b.closed {
		b.frame = frame
	}
	b.mu.Unlock()
}

// Snapshot returns the latest published frame. ok is false before the
// first publish and after Close. The returned slice is never mutated
// afterwards, so a reader already holding one may keep using it.
func (b *FrameBuffer) Snapshot() (frame []byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed || b.frame == nil {
		return nil, false
	}
	return b.frame, true
}

// Close marks the buffer unavailable for new reads and publishes.
func (b *FrameBuffer) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}
