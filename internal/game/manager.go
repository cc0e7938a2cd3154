package game

import (
	"sync"
)

type session struct {
	mu    sync.Mutex
	table *Table
}

// Manager keeps one Table per session and serializes actions on each of
// them. Different sessions never block each other.
type Manager struct {
	tables   map[string]*session
	mu       sync.RWMutex
	newTable func() *Table
}

func NewManager(newTable func() *Table) *Manager {
	return &Manager{
		tables:   make(map[string]*session),
		newTable: newTable,
	}
}

func (m *Manager) get(id string) *session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables[id]
}

func (m *Manager) open(id string) (*session, bool) {
	if s := m.get(id); s != nil {
		return s, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.tables[id]; ok {
		return s, false
	}
	s := &session{table: m.newTable()}
	m.tables[id] = s
	return s, true
}

// Open makes sure a table exists for id and reports whether it was created.
func (m *Manager) Open(id string) bool {
	_, created := m.open(id)
	return created
}

// Set installs t as the table for id, replacing any previous one.
func (m *Manager) Set(id string, t *Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[id] = &session{table: t}
}

// Do runs fn with exclusive access to the table for id, creating it first if needed.
func (m *Manager) Do(id string, fn func(*Table) error) error {
	s, _ := m.open(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.table)
}

// With runs fn with exclusive access to an existing table.
func (m *Manager) With(id string, fn func(*Table) error) error {
	s := m.get(id)
	if s == nil {
		return ErrTableNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.table)
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tables[id]
	delete(m.tables, id)
	return ok
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}
