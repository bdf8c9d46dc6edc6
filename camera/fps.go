package camera

import "time"

// fpsMeter counts frames and reports the rate observed over the last
// full second. The clock is injectable for tests.
type fpsMeter struct {
	now     func() time.Time
	since   time.Time
	frames  int
	current int
}

func newFPSMeter(now func() time.Time) *fpsMeter {
	return &fpsMeter{now: now, since: now()}
}

// Tick counts one frame and returns the most recent per-second rate.
func (m *fpsMeter) Tick() int {
	m.frames++
	if t := m.now(); t.Sub(m.since) >= time.Second {
		m.current = m.frames
		m.frames = 0
		m.since = t
	}
	return m.current
}
