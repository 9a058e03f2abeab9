package transport

import "sync"

// IdentifierManager vends the wire-visible connection identifiers for
// one URL scheme. Identifiers start at 1; a claim always returns the
// smallest free one, so released identifiers are reused.
type IdentifierManager struct {
	mu   sync.Mutex
	used map[int]struct{}
}

// NewIdentifierManager creates an empty manager.
func NewIdentifierManager() *IdentifierManager {
	return &IdentifierManager{used: make(map[int]struct{})}
}

// Claim reserves and returns the smallest free identifier.
func (m *IdentifierManager) Claim() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := 1
	for {
		if _, taken := m.used[id]; !taken {
			m.used[id] = struct{}{}
			return id
		}
		id++
	}
}

// Release returns an identifier to the free pool. Releasing a free
// identifier is a no-op.
func (m *IdentifierManager) Release(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.used, id)
}

// InUse returns the number of claimed identifiers.
func (m *IdentifierManager) InUse() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.used)
}
