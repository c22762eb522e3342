package draft

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/form"
)

// Draft is the persisted state of a form between requests.
type Draft struct {
	ID        string          `json:"id"`
	State     form.State[any] `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// New creates a draft with a random identifier holding state, valid for ttl.
func New(state form.State[any], ttl time.Duration) *Draft {
	now := time.Now()
	return &Draft{
		ID:        uuid.NewString(),
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the draft outlived its expiration time.
func (d *Draft) IsExpired() bool {
	return time.Now().After(d.ExpiresAt)
}

// Refresh replaces the stored state and extends the expiration by ttl from now.
func (d *Draft) Refresh(state form.State[any], ttl time.Duration) {
	now := time.Now()
	d.State = state
	d.UpdatedAt = now
	d.ExpiresAt = now.Add(ttl)
}

// ValidID reports whether id has the shape of a draft identifier.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func (d *Draft) validate() error {
	if d == nil || d.ID == "" {
		return ErrInvalidDraft
	}
	return nil
}
