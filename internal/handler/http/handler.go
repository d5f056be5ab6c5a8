package http

import (
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/service"
)

// Handler serves the notes REST API.
type Handler struct {
	notes   service.NoteService
	auth    service.AuthService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		notes:   services.NoteService,
		auth:    services.AuthService,
		appInfo: services.AppInfoService,
		logger:  logger,
	}
}
