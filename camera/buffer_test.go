package camera

import (
	"bytes"
	"sync"
	"testing"
)

func TestFrameBufferEmptyUntilFirstPublish(t *testing.T) {
	b := NewFrameBuffer()
	if frame, ok := b.Snapshot(); ok || frame != nil {
		t.Errorf("Snapshot() before publish = (%v, %v), want (nil, false)", frame, ok)
	}
}

func TestFrameBufferPublishCopies(t *testing.T) {
	b := NewFrameBuffer()
	src := []byte{1, 2, 3}
	b.Publish(src)
	src[0] = 99 // the encoder reuses its backing buffer

	frame, ok := b.Snapshot()
	if !ok || !bytes.Equal(frame, []byte{1, 2, 3}) {
		t.Errorf("Snapshot() = (%v, %v), want copy of original bytes", frame, ok)
	}
}

func TestFrameBufferClose(t *testing.T) {
	b := NewFrameBuffer()
	b.Publish([]byte("frame-1"))

	last, ok := b.Snapshot()
	if !ok {
		t.Fatal("expected a frame before close")
	}

	b.Close()
	if _, ok := b.Snapshot(); ok {
		t.Error("Snapshot() after Close must report not ok")
	}
	b.Publish([]byte("frame-2")) // ignored

	// A reader that grabbed the last frame before shutdown can still use it.
	if string(last) != "frame-1" {
		t.Errorf("drained frame changed to %q", last)
	}
}

// Readers must never observe a torn frame while the writer replaces it.
// Every published frame is uniform, so any mixed content is a torn read.
func TestFrameBufferNoTornReads(t *testing.T) {
	b := NewFrameBuffer()
	const frameSize = 4096
	const rounds = 500

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		frame := make([]byte, frameSize)
		for i := 0; i < rounds; i++ {
			fill := byte(i % 251)
			for j := range frame {
				frame[j] = fill
			}
			b.Publish(frame)
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				frame, ok := b.Snapshot()
				if !ok {
					continue
				}
				if len(frame) != frameSize {
					t.Errorf("unexpected frame length %d", len(frame))
					return
				}
				fill := frame[0]
				for _, v := range frame {
					if v != fill {
						t.Errorf("torn read: frame mixes %d and %d", fill, v)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}
