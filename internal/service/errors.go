package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoteTooLarge        = errors.New("note is too large to store on the server")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrValidationNoOwnerID = errors.New("no owner ID was given")

	// ErrServerUnavailable is returned by client services when the notes
	// server could not be reached at all.
	ErrServerUnavailable = errors.New("notes server is unavailable")
)
