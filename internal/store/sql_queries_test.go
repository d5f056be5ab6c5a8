// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-vault/models"
)

func Test_buildListNotesQuery_ScopedAndOrdered(t *testing.T) {
	query, args, err := buildListNotesQuery("owner-1")
	require.NoError(t, err)

	require.Equal(t, []any{"owner-1"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "where owner_id = $1")
	require.Contains(t, q, "order by created_at desc")
	for _, col := range noteColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildUpdateNoteQuery_NeverChangesOwnerOrID(t *testing.T) {
	query, args, err := buildUpdateNoteQuery(sampleNote())
	require.NoError(t, err)

	set := strings.ToLower(query[:strings.Index(strings.ToLower(query), "where")])
	require.NotContains(t, set, "owner_id")
	require.NotContains(t, set, "note_id")
	require.Contains(t, set, "updated_at = now()")
	require.Len(t, args, 6)
}

func Test_buildInsertNoteQuery_EmptySaltIsNull(t *testing.T) {
	note := sampleNote()
	note.Salt = ""

	_, args, err := buildInsertNoteQuery(note)
	require.NoError(t, err)

	salt := args[len(args)-1]
	value, err := nullString("").Value()
	require.NoError(t, err)
	require.Nil(t, value)
	require.Equal(t, nullString(""), salt)
}

func Test_sqlitePlaceholders(t *testing.T) {
	builders := map[string]func() (string, []any, error){
		"upsert":  func() (string, []any, error) { return buildUpsertLocalNoteQuery(models.Note{NoteID: "n1"}) },
		"select":  func() (string, []any, error) { return buildSelectLocalNoteQuery("n1") },
		"delete":  func() (string, []any, error) { return buildDeleteLocalNoteQuery("n1") },
		"profile": func() (string, []any, error) { return buildInsertProfileQuery(models.Profile{}) },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			query, _, err := build()
			require.NoError(t, err)
			require.Contains(t, query, "?")
			require.NotContains(t, query, "$1")
		})
	}
}
