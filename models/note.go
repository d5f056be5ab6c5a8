// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedRecord is the ciphertext envelope produced for a single note body.
//
// All three fields are standard base64 strings. Salt is empty only for records
// written by the legacy global-salt scheme; such records are not readable by
// this client.
type EncryptedRecord struct {
	// EncryptedContent is the AES-GCM ciphertext with the authentication tag
	// appended.
	EncryptedContent string `json:"encrypted_content"`

	// IV is the 12-byte GCM nonce used for this record only.
	IV string `json:"iv"`

	// Salt is the 16-byte PBKDF2 salt the record key was derived with.
	Salt string `json:"salt,omitempty"`
}

// HasSalt reports whether the record carries its own key derivation salt.
func (r EncryptedRecord) HasSalt() bool {
	return r.Salt != ""
}

// Note is the storage representation of a single note. The server and the
// local cache only ever hold the encrypted body.
type Note struct {
	// NoteID is an opaque, client generated identifier (UUID v7).
	NoteID string `json:"note_id"`

	// OwnerID is the opaque owner identifier taken from the bearer token.
	OwnerID string `json:"owner_id"`

	// Title is optional and stored in clear text.
	Title *string `json:"title,omitempty"`

	EncryptedRecord

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteTitle returns the title or an empty string when none is set.
func (n Note) NoteTitle() string {
	if n.Title == nil {
		return ""
	}
	return *n.Title
}
