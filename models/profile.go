package models

import "time"

// Profile is the local, non-secret metadata of a password-protected vault.
//
// Verifier is a known text sealed under the password with the profile salt
// (carried in Verifier.Salt). Opening it tells a right password from a
// wrong one before any note is touched.
type Profile struct {
	Verifier  EncryptedRecord `json:"verifier"`
	CreatedAt time.Time       `json:"created_at"`
}
