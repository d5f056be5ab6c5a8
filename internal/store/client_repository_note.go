package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/models"
)

type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalNoteRepository constructs the SQLite notes cache.
func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &localNoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localNoteRepository) SaveNotes(ctx context.Context, notes ...models.Note) error {
	log := logger.FromContext(ctx)

	for _, note := range notes {
		query, args, err := buildUpsertLocalNoteQuery(note)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*localNoteRepository.SaveNotes").
				Str("note_id", note.NoteID).
				Msg("failed to execute upsert for note")
			return fmt.Errorf("failed to save note (note_id=%s): %w", note.NoteID, err)
		}
	}

	return nil
}

func (l *localNoteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	query, args, err := buildSelectLocalNoteQuery(noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localNoteRepository.GetNote").
			Str("note_id", noteID).
			Msg("failed to scan cached note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (l *localNoteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLocalNotesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*localNoteRepository.ListNotes").Msg("failed to list cached notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// DeleteNote removes a cached note. A missing note is not an error.
func (l *localNoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	query, args, err := buildDeleteLocalNoteQuery(noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localNoteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to delete cached note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
