// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the notes server
// handlers and the client error mapper.
//
// The server writes these into response bodies; the client matches on them
// to restore the sentinel error on its side of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a note misses a required field.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidNoteID is returned when the note id is not a UUID.
	MsgInvalidNoteID = "invalid note id"

	// MsgEmptyEncryptedContent is returned for a note without ciphertext.
	MsgEmptyEncryptedContent = "encrypted content is required"

	// MsgEmptyIV is returned for a note without an IV.
	MsgEmptyIV = "iv is required"

	// MsgNoteTooLarge is returned for a request body over the size limit.
	MsgNoteTooLarge = "note is too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is well formed but
	// past its expiry time.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoOwnerIDProvided is returned when a handler needs the owner id from
	// the token but none is present in the request context.
	MsgNoOwnerIDProvided = "no owner ID provided"

	// MsgNoteNotFound is returned when the note does not exist for the
	// current owner.
	MsgNoteNotFound = "note not found"

	// MsgNoteAlreadyExists is returned when a create targets a note id that
	// is already taken.
	MsgNoteAlreadyExists = "note already exists"

	// MsgVersionIsNotSpecified is returned by /api/version when the server
	// was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"
)
