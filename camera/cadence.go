package camera

// Cadence throttles the expensive per-frame work. The intervals count
// loop iterations, not wall-clock time: an emotion label may be up to
// EmotionEvery frames stale regardless of frame rate.
type Cadence struct {
	EmotionEvery int // run emotion inference on every Nth iteration
	LogEvery     int // append a log record on every Nth iteration
}

// EmotionDue reports whether emotion inference runs on this iteration.
func (c Cadence) EmotionDue(frame uint64) bool {
	if c.EmotionEvery <= 1 {
		return true
	}
	return frame%uint64(c.EmotionEvery) == 0
}

// LogDue reports whether a log record is appended on this iteration.
// Both conditions must hold: the iteration matches the cadence AND a
// face was detected on this very iteration.
func (c Cadence) LogDue(frame uint64, faceFound bool) bool {
	if !faceFound || c.LogEvery <= 0 {
		return false
	}
	return frame%uint64(c.LogEvery) == 0
}
