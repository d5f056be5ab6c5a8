package validators

import "errors"

var (
	ErrUnknownField = errors.New("unknown field for validation")

	ErrInvalidNoteID         = errors.New("invalid note id")
	ErrInvalidOwnerID        = errors.New("invalid owner id")
	ErrEmptyEncryptedContent = errors.New("encrypted content is required")
	ErrEmptyIV               = errors.New("iv is required")
)
