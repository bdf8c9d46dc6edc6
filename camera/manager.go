package camera

import "sync"

// Manager holds the zero-or-one live session. Start and Stop are
// idempotent so the session control endpoints can be hit repeatedly.
type Manager struct {
	mu      sync.Mutex
	start   func() (*Session, error)
	current *Session
}

func NewManager(start func() (*Session, error)) *Manager {
	return &Manager{start: start}
}

// Start returns the running session, creating one if needed.
func (m *Manager) Start() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil && m.current.State() == StateRunning {
		return m.current, nil
	}
	session, err := m.start()
	if err != nil {
		return nil, err
	}
	m.current = session
	return session, nil
}

// Stop tears down the current session, if any.
func (m *Manager) Stop() {
	m.mu.Lock()
	session := m.current
	m.current = nil
	m.mu.Unlock()
	if session != nil {
		session.Stop()
	}
}

// Current returns the running session or nil.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.State() != StateRunning {
		return nil
	}
	return m.current
}
