package draft

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory.
// Drafts are stored as JSON so callers never share maps with the store.
type MemoryStore struct {
	mu        sync.RWMutex
	drafts    map[string]memoryEntry
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates a store that drops expired drafts every
// cleanupInterval. A zero interval disables the background cleanup.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		drafts: make(map[string]memoryEntry),
		done:   make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

func (m *MemoryStore) Create(ctx context.Context, d *Draft) error {
	if err := d.validate(); err != nil {
		return err
	}
	entry, err := encodeEntry(d)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.drafts[d.ID]; ok && time.Now().Before(existing.expiresAt) {
		return ErrDraftExists
	}
	m.drafts[d.ID] = entry
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Draft, error) {
	m.mu.RLock()
	entry, ok := m.drafts[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrDraftNotFound
	}

	if time.Now().After(entry.expiresAt) {
		var expired bool
		if entry, expired = m.deleteIfExpired(id); expired {
			return nil, ErrDraftExpired
		}
	}

	var d Draft
	if err := json.Unmarshal(entry.data, &d); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return &d, nil
}

// deleteIfExpired re-reads id under the write lock and deletes it only if it
// is still expired. A draft refreshed in the meantime is returned instead.
func (m *MemoryStore) deleteIfExpired(id string) (memoryEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.drafts[id]
	if !ok {
		return memoryEntry{}, true
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.drafts, id)
		return memoryEntry{}, true
	}
	return entry, false
}

func (m *MemoryStore) Update(ctx context.Context, d *Draft) error {
	if err := d.validate(); err != nil {
		return err
	}
	entry, err := encodeEntry(d)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.drafts[d.ID]; !ok {
		return ErrDraftNotFound
	}
	m.drafts[d.ID] = entry
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}

// DeleteExpired removes all expired drafts.
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, entry := range m.drafts {
		if now.After(entry.expiresAt) {
			delete(m.drafts, id)
		}
	}
	return nil
}

// Len returns the number of stored drafts, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.drafts)
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.closeOnce.Do(func() {
			m.ticker.Stop()
			close(m.done)
		})
	}
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}

func encodeEntry(d *Draft) (memoryEntry, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return memoryEntry{}, errors.Join(ErrFailedToEncode, err)
	}
	return memoryEntry{data: data, expiresAt: d.ExpiresAt}, nil
}
