package messages

import "errors"

var (
	ErrLoadingCancelled  = errors.New("loading messages cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML messages")
	ErrFailedToParseJSON = errors.New("failed to parse JSON messages")
	ErrFailedToReadFile  = errors.New("failed to read messages file")
	ErrInvalidCatalog    = errors.New("invalid messages catalog")
	ErrUnsupportedFormat = errors.New("unsupported messages file format")
)
