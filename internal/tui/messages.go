package tui

import (
	"github.com/MKhiriev/go-notes-vault/models"
)

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteOpenedMsg struct {
	note models.Note
	body string
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

type copiedMsg struct {
	err error
}

// promptRequestMsg asks a running browser to show the password prompt.
type promptRequestMsg struct {
	firstUse bool
	reply    chan<- promptResult
}

type promptResult struct {
	password string
	err      error
}
