package draft

import "context"

// Store defines the interface for draft persistence.
type Store interface {
	// Create stores a new draft. It fails with ErrDraftExists when the ID is taken.
	Create(ctx context.Context, d *Draft) error

	// Get retrieves a draft by ID.
	Get(ctx context.Context, id string) (*Draft, error)

	// Update replaces an existing draft.
	Update(ctx context.Context, d *Draft) error

	// Delete removes a draft. Deleting a missing draft is not an error.
	Delete(ctx context.Context, id string) error
}
