package store

import "github.com/MKhiriev/go-notes-vault/internal/logger"

// Storages is the server storage aggregate.
type Storages struct {
	NoteRepository NoteRepository
}

// NewStorages wires the server repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
	}
}

// ClientStorages is the client storage aggregate.
type ClientStorages struct {
	ProfileRepository   ProfileRepository
	LocalNoteRepository LocalNoteRepository
}

// NewClientStorages wires the client repositories on top of db.
func NewClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		ProfileRepository:   NewProfileRepository(db, log),
		LocalNoteRepository: NewLocalNoteRepository(db, log),
	}
}
