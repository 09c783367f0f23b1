package storage

import "sync"

// MemoryIndex is the in-process stock index. Counters live in a single map,
// the grand total under its reserved key among them; a mutex keeps each
// operation atomic so the ledger can treat the index as safe from any
// calling goroutine.
type MemoryIndex struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{counts: make(map[string]int)}
}

func (m *MemoryIndex) Increment(name string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name] += quantity
}

// Decrement subtracts quantity only when the counter exists and can satisfy
// it, mirroring a conditional check-and-decrement.
func (m *MemoryIndex) Decrement(name string, quantity int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.counts[name]
	if !ok || current < quantity {
		return false
	}
	m.counts[name] = current - quantity
	return true
}

func (m *MemoryIndex) Deduct(name string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name] -= quantity
}

func (m *MemoryIndex) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.counts[name]
	return ok
}

func (m *MemoryIndex) Get(name string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.counts[name]
	return v, ok
}

func (m *MemoryIndex) Snapshot() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out
}
