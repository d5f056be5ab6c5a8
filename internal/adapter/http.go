package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/utils"
	"github.com/MKhiriev/go-notes-vault/models"
)

const (
	notesPath   = "/api/notes"
	notePath    = "/api/notes/{noteID}"
	versionPath = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and stores the bearer token from appCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(appCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// CreateNote implements [ServerAdapter]. POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = checkResponse(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// UpdateNote implements [ServerAdapter]. PUT /api/notes/{noteID}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var updated models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("noteID", note.NoteID).
		SetBody(note).
		SetResult(&updated).
		Put(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = checkResponse(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// GetNote implements [ServerAdapter]. GET /api/notes/{noteID}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("noteID", noteID).
		SetResult(&note).
		Get(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = checkResponse(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// ListNotes implements [ServerAdapter]. GET /api/notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes := make([]models.Note, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&notes).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = checkResponse(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// DeleteNote implements [ServerAdapter]. DELETE /api/notes/{noteID}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("noteID", noteID).
		Delete(notePath)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return checkResponse(resp)
}

// Version implements [ServerAdapter]. GET /api/version, no token needed.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = checkResponse(resp); err != nil {
		return "", err
	}

	return body.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
