package localstore

import "sync"

// Memory holds one value in memory. It doubles as the test fake and as the
// backend when persistence is disabled: reads and writes succeed but
// nothing survives the process.
type Memory struct {
	mu    sync.Mutex
	value string
	ok    bool
}

func NewMemory() *Memory { return &Memory{} }

// Seed pre-populates the stored value, for tests that need pre-existing or
// corrupted state.
func (m *Memory) Seed(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.ok = value, true
}

func (m *Memory) Read() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.ok, nil
}

func (m *Memory) Write(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.ok = value, true
	return nil
}
