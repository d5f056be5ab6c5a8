// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/service"
)

// TUI runs the interactive notes browser.
type TUI struct {
	notes    service.ClientNoteService
	vault    VaultState
	prompter *Prompter
	logger   *logger.Logger

	opts []tea.ProgramOption
}

// New returns a TUI. The prompter must be the one the vault session was
// built with, so unlock requests raised while browsing show up inside the
// browser instead of fighting it for the terminal.
func New(notes service.ClientNoteService, v VaultState, prompter *Prompter, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		notes:    notes,
		vault:    v,
		prompter: prompter,
		logger:   log,
		opts:     opts,
	}
}

// Browse blocks until the user quits the browser or ctx is cancelled.
func (t *TUI) Browse(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, t.opts...)
	program := tea.NewProgram(newBrowserModel(ctx, t.notes, t.vault), opts...)

	if t.prompter != nil {
		t.prompter.attach(program)
		defer t.prompter.detach()
	}

	t.logger.Debug().Msg("notes browser started")
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run notes browser: %w", err)
	}
	return nil
}
