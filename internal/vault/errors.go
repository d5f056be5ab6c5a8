// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

// User facing errors. Their text is safe to show as is; the underlying
// cause stays reachable through [errors.Is] and [errors.As].
var (
	ErrCouldNotUnlock    = errors.New("could not unlock the vault, please try again")
	ErrCouldNotSave      = errors.New("could not save the note, please try again")
	ErrInvalidNoteText   = errors.New("the note text is not valid UTF-8 and cannot be saved")
	ErrUndecryptable     = errors.New("this note could not be decrypted with the current key")
	ErrCorruptRecord     = errors.New("this note is damaged and cannot be opened")
	ErrCryptoUnavailable = errors.New("encryption is not available right now")
)

var (
	// ErrPromptCancelled is returned by a [Prompter] when the user dismisses
	// the password prompt.
	ErrPromptCancelled = errors.New("password prompt cancelled")

	// ErrEmptyPassword is returned when the prompt yields an empty string.
	ErrEmptyPassword = errors.New("empty password")

	// ErrLockedDuringUnlock means Lock was called while an unlock was in
	// flight; the acquired secret is discarded.
	ErrLockedDuringUnlock = errors.New("vault was locked during unlock")

	errProfileUnavailable = errors.New("local profile is unavailable")
	errEmptySecret        = errors.New("secret source returned an empty secret")
	errSecretExpired      = errors.New("cached secret expired before use")
)

// UserError pairs a user facing message with its cause.
type UserError struct {
	kind  error
	cause error
}

func newUserError(kind, cause error) *UserError {
	return &UserError{kind: kind, cause: cause}
}

// Error returns the user facing message only.
func (e *UserError) Error() string {
	return e.kind.Error()
}

// Unwrap exposes both the user facing category and the cause.
func (e *UserError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Cause returns the underlying error. It may contain technical detail and
// must not be shown to the user.
func (e *UserError) Cause() error {
	return e.cause
}

var userErrors = []error{
	ErrCouldNotUnlock,
	ErrCouldNotSave,
	ErrInvalidNoteText,
	ErrUndecryptable,
	ErrCorruptRecord,
	ErrCryptoUnavailable,
}

// Message returns the user facing text for err. The second result is false
// when err carries no user facing category.
func Message(err error) (string, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Error(), true
	}
	for _, kind := range userErrors {
		if errors.Is(err, kind) {
			return kind.Error(), true
		}
	}
	return "", false
}
