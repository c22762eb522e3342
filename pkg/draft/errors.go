package draft

import "errors"

var (
	ErrDraftNotFound    = errors.New("draft not found")
	ErrDraftExpired     = errors.New("draft expired")
	ErrDraftExists      = errors.New("draft already exists")
	ErrInvalidDraft     = errors.New("invalid draft")
	ErrFailedToEncode   = errors.New("failed to encode draft")
	ErrFailedToDecode   = errors.New("failed to decode draft")
	ErrStorageOperation = errors.New("draft storage operation failed")
)
