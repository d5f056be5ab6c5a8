package service

import (
	"github.com/MKhiriev/go-notes-vault/internal/adapter"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/internal/utils"
)

// VaultSession is what the client services need from the vault session.
type VaultSession interface {
	NoteVault
	IdleLocker
}

type ClientServices struct {
	NoteService ClientNoteService
	ExpiryJob   VaultExpiryJob
}

func NewClientServices(session VaultSession, localStore store.LocalNoteRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteService: NewClientNoteService(session, localStore, serverAdapter, utils.NewUUIDGenerator(), logger),
		ExpiryJob:   NewVaultExpiryJob(session, logger),
	}
}
