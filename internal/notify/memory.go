package notify

import (
	"context"
	"sort"
	"sync"
)

// MemoryNotifier keeps alarms in process memory. It backs the tests and
// the web build, where no real alarm facility exists.
type MemoryNotifier struct {
	mu      sync.Mutex
	pending map[int]Request
	denied  error
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{pending: make(map[int]Request)}
}

// Deny makes every subsequent Schedule call fail with the given error,
// simulating a revoked notification permission. Pass nil to restore.
func (m *MemoryNotifier) Deny(err error) {
	m.mu.Lock()
	m.denied = err
	m.mu.Unlock()
}

func (m *MemoryNotifier) Schedule(_ context.Context, req Request) error {
	if err := validate(req); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.denied != nil {
		return m.denied
	}
	m.pending[req.ID] = req
	return nil
}

func (m *MemoryNotifier) Cancel(_ context.Context, ids []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.pending, id)
	}
	return nil
}

func (m *MemoryNotifier) ListPending(_ context.Context) ([]Pending, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Pending, 0, len(m.pending))
	for _, req := range m.pending {
		out = append(out, Pending{ID: req.ID, FireAt: req.FireAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
