// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/crypto"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/models"
	"golang.org/x/sync/singleflight"
)

const unlockFlightKey = "unlock"

// Session owns the vault lifecycle for one user: it acquires the secret,
// caches it for the idle timeout and seals or opens notes with it.
//
// All methods are safe for concurrent use. Concurrent unlocks share a single
// prompt or signing request.
type Session struct {
	source   SecretSource
	envelope crypto.Envelope
	logger   *logger.Logger
	now      func() time.Time

	mu    sync.Mutex
	state State
	epoch uint64
	ring  keyring

	unlocks singleflight.Group
}

// Option configures a [Session].
type Option func(*Session)

// WithIdleTimeout sets how long the cached secret survives without use.
// Zero keeps it until Lock.
func WithIdleTimeout(ttl time.Duration) Option {
	return func(s *Session) { s.ring.ttl = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger used for malformed-record reports.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession returns a locked Session.
func NewSession(source SecretSource, envelope crypto.Envelope, opts ...Option) *Session {
	s := &Session{
		source:   source,
		envelope: envelope,
		logger:   logger.Nop(),
		now:      time.Now,
		state:    Locked,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the current state. An idle-expired session reports Locked.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	return s.state
}

// Unlock acquires the secret from the configured source and caches it.
// It is a no-op on an unlocked session. On failure the session stays Locked
// and the returned error is a [*UserError] of kind [ErrCouldNotUnlock].
func (s *Session) Unlock(ctx context.Context) error {
	if err := s.unlock(ctx); err != nil {
		return newUserError(ErrCouldNotUnlock, err)
	}
	return nil
}

// Lock wipes the cached secret. It returns once the secret is gone.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring.wipe()
	s.state = Locked
	s.epoch++
}

// Relock discards the cached secret and unlocks again. It is the recovery
// path after [ErrUndecryptable].
func (s *Session) Relock(ctx context.Context) error {
	s.Lock()
	return s.Unlock(ctx)
}

// ExpireIdle locks the session if its secret has been idle for longer than
// the idle timeout. It reports whether the session was locked by this call.
func (s *Session) ExpireIdle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.expireLocked()
}

// HasProfile reports whether the secret source already holds local profile
// metadata. Sources without a profile report false.
func (s *Session) HasProfile(ctx context.Context) (bool, error) {
	reporter, ok := s.source.(interface {
		HasProfile(ctx context.Context) (bool, error)
	})
	if !ok {
		return false, nil
	}
	return reporter.HasProfile(ctx)
}

// SaveNote encrypts plaintext under a fresh per-record salt and returns the
// record to persist. A locked session is unlocked first; if that fails the
// save is aborted with [ErrCouldNotSave]. Plaintext that could never be
// opened again is refused with [ErrInvalidNoteText]. There is no
// unencrypted path.
func (s *Session) SaveNote(ctx context.Context, plaintext string) (models.EncryptedRecord, error) {
	secret, err := s.acquire(ctx)
	if err != nil {
		return models.EncryptedRecord{}, newUserError(ErrCouldNotSave, err)
	}

	record, err := s.envelope.Seal(plaintext, secret)
	if errors.Is(err, crypto.ErrEncoding) {
		return models.EncryptedRecord{}, newUserError(ErrInvalidNoteText, err)
	}
	if err != nil {
		return models.EncryptedRecord{}, newUserError(ErrCouldNotSave, err)
	}

	return record, nil
}

// OpenNote decrypts record. A locked session is unlocked first.
//
// A record the current secret cannot authenticate yields
// [ErrUndecryptable] and leaves the session unlocked. A malformed record
// yields [ErrCorruptRecord] and is logged without its content.
func (s *Session) OpenNote(ctx context.Context, record models.EncryptedRecord) (string, error) {
	secret, err := s.acquire(ctx)
	if err != nil {
		return "", newUserError(ErrCouldNotUnlock, err)
	}

	plaintext, err := s.envelope.Open(record, secret)
	if err != nil {
		return "", s.translateOpenError(err)
	}

	return plaintext, nil
}

func (s *Session) translateOpenError(err error) error {
	switch {
	case errors.Is(err, crypto.ErrEncoding):
		s.logger.Warn().Err(err).Str("func", "*Session.OpenNote").Msg("encrypted record is malformed")
		return newUserError(ErrCorruptRecord, err)
	case errors.Is(err, crypto.ErrAuthentication):
		return newUserError(ErrUndecryptable, err)
	default:
		return newUserError(ErrCryptoUnavailable, err)
	}
}

// acquire returns the cached secret, unlocking first when needed.
func (s *Session) acquire(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		s.mu.Lock()
		secret, ok := s.ring.secret(s.now())
		if ok && s.state == Unlocked {
			s.mu.Unlock()
			return secret, nil
		}
		if s.state == Unlocked {
			s.state = Locked
		}
		s.mu.Unlock()

		if err := s.unlock(ctx); err != nil {
			return "", err
		}
	}

	return "", errSecretExpired
}

// unlock joins the in-flight unlock or starts one. The shared call runs
// detached from any single caller's cancellation; each caller stops waiting
// when its own ctx is done. Sources bound their own blocking time.
func (s *Session) unlock(ctx context.Context) error {
	flightCtx := context.WithoutCancel(ctx)
	flight := s.unlocks.DoChan(unlockFlightKey, func() (any, error) {
		s.mu.Lock()
		s.expireLocked()
		if s.state == Unlocked {
			s.mu.Unlock()
			return nil, nil
		}
		s.state = Unlocking
		epoch := s.epoch
		s.mu.Unlock()

		secret, err := s.source.Acquire(flightCtx)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.epoch != epoch {
			return nil, ErrLockedDuringUnlock
		}
		if err != nil {
			s.state = Locked
			return nil, err
		}
		if secret == "" {
			s.state = Locked
			return nil, errEmptySecret
		}

		s.ring.store(secret, s.now())
		s.state = Unlocked
		return nil, nil
	})

	select {
	case res := <-flight:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// expireLocked must be called with mu held.
func (s *Session) expireLocked() bool {
	if s.state != Unlocked || !s.ring.expired(s.now()) {
		return false
	}

	s.ring.wipe()
	s.state = Locked
	return true
}
