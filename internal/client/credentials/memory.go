package credentials

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the token in process memory. Failures can be injected
// per operation, which is what the session tests rely on.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	present bool

	loadErr  error
	saveErr  error
	clearErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith returns a store that already holds token.
func NewMemoryStoreWith(token string) *MemoryStore {
	return &MemoryStore{token: token, present: true}
}

// FailLoad makes subsequent Load calls return err. nil restores normal behaviour.
func (m *MemoryStore) FailLoad(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *MemoryStore) FailSave(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *MemoryStore) FailClear(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearErr = err
}

func (m *MemoryStore) Load(ctx context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	return m.token, m.present, nil
}

func (m *MemoryStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token, m.present = token, true
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token, m.present = "", false
	return nil
}
