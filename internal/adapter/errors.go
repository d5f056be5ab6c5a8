// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Categories of non-2xx answers from the notes server. A [StatusError]
// unwraps to exactly one of them.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrServerFailure    = errors.New("server failure")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

var statusKinds = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
}

// StatusError is a non-2xx response. Body holds the server's plain text
// message, trimmed.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Unwrap(), e.Message())
}

// Unwrap returns the category of the status code.
func (e *StatusError) Unwrap() error {
	if kind, ok := statusKinds[e.Code]; ok {
		return kind
	}
	if e.Code >= http.StatusInternalServerError {
		return ErrServerFailure
	}
	return ErrUnexpectedStatus
}

// Message returns the body, or the status text when the body is empty.
func (e *StatusError) Message() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d %s", e.Code, http.StatusText(e.Code))
	}
	return e.Body
}

// checkResponse returns nil for 2xx responses and a *StatusError otherwise.
func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &StatusError{
		Code: resp.StatusCode(),
		Body: strings.TrimSpace(string(resp.Body())),
	}
}
