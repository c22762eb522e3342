// Package draft persists form state between HTTP requests, so a stateless
// server can host a multi-step interaction with one form.
//
// A Draft wraps a form.State snapshot with an identifier and an expiration
// time. Stores:
//
//   - MemoryStore keeps JSON-encoded drafts in process memory and drops
//     expired ones periodically.
//   - RedisStore keeps them in Redis (github.com/redis/go-redis/v9); keys
//     expire with the draft.
//
// Usage:
//
//	d := draft.New(f.Snapshot(), 30*time.Minute)
//	if err := store.Create(ctx, d); err != nil {
//	    return err
//	}
//
//	// later request
//	d, err := store.Get(ctx, id)
//	if err != nil {
//	    return err // ErrDraftNotFound or ErrDraftExpired
//	}
//	f.Restore(d.State)
package draft
