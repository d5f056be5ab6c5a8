package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/migrations"
	"github.com/MKhiriev/go-notes-vault/models"
)

func newTestClientDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, dialect: migrations.DialectSQLite, logger: logger.Nop()}, mock
}

// ── profile ───────────────────────────────────────────────────────────────────

func TestLoadProfile_Exists(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewProfileRepository(db, logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT verifier_content, verifier_iv, verifier_salt, created_at FROM profile WHERE id = \\?").
		WithArgs(profileRowID).
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow("Y3Q=", "aXY=", "c2FsdA==", now))

	profile, err := repo.LoadProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, models.EncryptedRecord{EncryptedContent: "Y3Q=", IV: "aXY=", Salt: "c2FsdA=="}, profile.Verifier)
	assert.Equal(t, now, profile.CreatedAt)
}

func TestLoadProfile_NoneYet(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectQuery("FROM profile").
		WillReturnRows(sqlmock.NewRows(profileColumns))

	profile, err := repo.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestLoadProfile_DBError(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectQuery("FROM profile").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.LoadProfile(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSaveProfile_Success(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewProfileRepository(db, logger.Nop())
	profile := models.Profile{
		Verifier:  models.EncryptedRecord{EncryptedContent: "Y3Q=", IV: "aXY=", Salt: "c2FsdA=="},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO profile").
		WithArgs(profileRowID, "Y3Q=", "aXY=", "c2FsdA==", profile.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveProfile(context.Background(), profile))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveProfile_AlreadyExists(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO profile").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	err := repo.SaveProfile(context.Background(), models.Profile{})
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
}

// ── local notes ───────────────────────────────────────────────────────────────

func TestLocalSaveNotes_UpsertsEach(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewLocalNoteRepository(db, logger.Nop())
	first := sampleNote()
	second := sampleNote()
	second.NoteID = "n2"

	mock.ExpectExec("INSERT INTO notes .+ ON CONFLICT\\(note_id\\) DO UPDATE").
		WithArgs(first.NoteID, first.OwnerID, "groceries", first.EncryptedContent, first.IV, first.Salt, first.CreatedAt, first.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO notes").
		WithArgs(second.NoteID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))

	require.NoError(t, repo.SaveNotes(context.Background(), first, second))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSaveNotes_StopsOnError(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewLocalNoteRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO notes").WillReturnError(errors.New("database is locked"))

	err := repo.SaveNotes(context.Background(), sampleNote(), sampleNote())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalGetNote(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewLocalNoteRepository(db, logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM notes WHERE note_id = \\?").
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow("n1", "owner-1", nil, "Y3Q=", "aXY=", "c2FsdA==", now, now))

	note, err := repo.GetNote(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", note.Salt)

	mock.ExpectQuery("FROM notes").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetNote(context.Background(), "n2")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestLocalListNotes(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewLocalNoteRepository(db, logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM notes ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow("n2", "owner-1", nil, "Y3Q=", "aXY=", "c2FsdA==", now, now).
			AddRow("n1", "owner-1", nil, "Y3Q=", "aXY=", "c2FsdA==", now.Add(-time.Minute), now))

	notes, err := repo.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].NoteID)
}

func TestLocalDeleteNote(t *testing.T) {
	db, mock := newTestClientDB(t)
	repo := NewLocalNoteRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM notes WHERE note_id = \\?").
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteNote(context.Background(), "n1"))
}

// ── connections ───────────────────────────────────────────────────────────────

func TestNewConnectSQLite_CreatesFileAndMigrates(t *testing.T) {
	dsn := t.TempDir() + "/nested/notes.db"

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	repo := NewProfileRepository(db, logger.Nop())
	profile, err := repo.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)

	saved := models.Profile{
		Verifier:  models.EncryptedRecord{EncryptedContent: "Y3Q=", IV: "aXY=", Salt: "c2FsdA=="},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.SaveProfile(context.Background(), saved))
	assert.ErrorIs(t, repo.SaveProfile(context.Background(), saved), ErrProfileAlreadyExists)

	loaded, err := repo.LoadProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Verifier, loaded.Verifier)
}
