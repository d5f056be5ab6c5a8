// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-vault/models"
)

const (
	notesTable   = "notes"
	profileTable = "profile"

	// profileRowID is the only row of the profile table.
	profileRowID = 1
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	noteColumns = []string{
		"note_id",
		"owner_id",
		"title",
		"encrypted_content",
		"iv",
		"salt",
		"created_at",
		"updated_at",
	}

	profileColumns = []string{
		"verifier_content",
		"verifier_iv",
		"verifier_salt",
		"created_at",
	}
)

// ── server (PostgreSQL) ───────────────────────────────────────────────────────

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert(notesTable).
		Columns("note_id", "owner_id", "title", "encrypted_content", "iv", "salt").
		Values(note.NoteID, note.OwnerID, note.Title, note.EncryptedContent, note.IV, nullString(note.Salt)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Update(notesTable).
		Set("title", note.Title).
		Set("encrypted_content", note.EncryptedContent).
		Set("iv", note.IV).
		Set("salt", nullString(note.Salt)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"owner_id": note.OwnerID}).
		Where(sq.Eq{"note_id": note.NoteID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildSelectNoteQuery(ownerID, noteID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildListNotesQuery(ownerID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "note_id DESC").
		ToSql()
}

func buildDeleteNoteQuery(ownerID, noteID string) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

// ── client (SQLite) ───────────────────────────────────────────────────────────

func buildUpsertLocalNoteQuery(note models.Note) (string, []any, error) {
	return sqlite.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.NoteID,
			note.OwnerID,
			note.Title,
			note.EncryptedContent,
			note.IV,
			nullString(note.Salt),
			note.CreatedAt,
			note.UpdatedAt,
		).
		Suffix(`ON CONFLICT(note_id) DO UPDATE SET
			owner_id = excluded.owner_id,
			title = excluded.title,
			encrypted_content = excluded.encrypted_content,
			iv = excluded.iv,
			salt = excluded.salt,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildSelectLocalNoteQuery(noteID string) (string, []any, error) {
	return sqlite.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildListLocalNotesQuery() (string, []any, error) {
	return sqlite.Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "note_id DESC").
		ToSql()
}

func buildDeleteLocalNoteQuery(noteID string) (string, []any, error) {
	return sqlite.Delete(notesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildSelectProfileQuery() (string, []any, error) {
	return sqlite.Select(profileColumns...).
		From(profileTable).
		Where(sq.Eq{"id": profileRowID}).
		ToSql()
}

func buildInsertProfileQuery(profile models.Profile) (string, []any, error) {
	return sqlite.Insert(profileTable).
		Columns(append([]string{"id"}, profileColumns...)...).
		Values(
			profileRowID,
			profile.Verifier.EncryptedContent,
			profile.Verifier.IV,
			profile.Verifier.Salt,
			profile.CreatedAt,
		).
		ToSql()
}

// ── scanning ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note  models.Note
		title sql.NullString
		salt  sql.NullString
	)

	err := row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&title,
		&note.EncryptedContent,
		&note.IV,
		&salt,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	if title.Valid {
		note.Title = &title.String
	}
	note.Salt = salt.String

	return note, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
