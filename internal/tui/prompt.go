// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-vault/internal/vault"
)

// Prompter asks for the vault password in the terminal.
//
// While a browser is running the prompt is shown inside it; otherwise a
// standalone prompt program takes over the terminal for the duration of the
// question.
type Prompter struct {
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}

	opts []tea.ProgramOption
}

// NewPrompter returns a Prompter. opts are passed to the standalone prompt
// program.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{opts: opts}
}

// PromptPassword implements [vault.Prompter].
func (p *Prompter) PromptPassword(ctx context.Context, firstUse bool) (string, error) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.mu.Unlock()

	if program != nil {
		return p.promptInProgram(ctx, program, done, firstUse)
	}
	return p.promptStandalone(ctx, firstUse)
}

func (p *Prompter) attach(program *tea.Program) {
	p.mu.Lock()
	p.program = program
	p.done = make(chan struct{})
	p.mu.Unlock()
}

// detach routes later prompts back to the standalone program and cancels
// any prompt the browser can no longer answer.
func (p *Prompter) detach() {
	p.mu.Lock()
	if p.done != nil {
		close(p.done)
	}
	p.program = nil
	p.done = nil
	p.mu.Unlock()
}

func (p *Prompter) promptInProgram(ctx context.Context, program *tea.Program, done <-chan struct{}, firstUse bool) (string, error) {
	reply := make(chan promptResult, 1)
	program.Send(promptRequestMsg{firstUse: firstUse, reply: reply})

	select {
	case res := <-reply:
		return res.password, res.err
	case <-done:
		return "", vault.ErrPromptCancelled
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *Prompter) promptStandalone(ctx context.Context, firstUse bool) (string, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)
	final, err := tea.NewProgram(standalonePrompt{prompt: newPromptModel(firstUse)}, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("run password prompt: %w", err)
	}

	result, ok := final.(standalonePrompt)
	if !ok || result.prompt.result == nil {
		return "", vault.ErrPromptCancelled
	}
	return result.prompt.result.password, result.prompt.result.err
}

// promptModel is the password form. It is embedded by the standalone
// program and by the browser; it never quits a program itself.
type promptModel struct {
	firstUse bool
	inputs   []textinput.Model
	focus    int
	errMsg   string

	// result is set once the user submits or cancels.
	result *promptResult
}

func newPromptModel(firstUse bool) promptModel {
	count := 1
	if firstUse {
		count = 2
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 1024
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Placeholder = "password"
	if firstUse {
		inputs[1].Placeholder = "repeat password"
	}
	inputs[0].Focus()

	return promptModel{firstUse: firstUse, inputs: inputs}
}

func (m promptModel) Update(msg tea.Msg) (promptModel, tea.Cmd) {
	if m.result != nil {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC, key.Matches(keyMsg, keys.esc):
			m.result = &promptResult{err: vault.ErrPromptCancelled}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m promptModel) submit() (promptModel, tea.Cmd) {
	password := m.inputs[0].Value()
	if password == "" {
		m.errMsg = "The password must not be empty."
		return m, nil
	}

	if m.firstUse {
		if m.focus == 0 {
			m.inputs[0].Blur()
			m.focus = 1
			m.inputs[1].Focus()
			return m, nil
		}
		if m.inputs[1].Value() != password {
			m.errMsg = "The passwords do not match."
			m.inputs[1].SetValue("")
			return m, nil
		}
	}

	m.errMsg = ""
	m.result = &promptResult{password: password}
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder
	if m.firstUse {
		b.WriteString("Set a password for your vault.\n")
		b.WriteString("It cannot be recovered. Notes sealed with it are lost if you forget it.\n\n")
	} else {
		b.WriteString("Enter your password to unlock the vault.\n\n")
	}

	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit │ tab: next field │ esc: cancel"))
	return promptBox.Render(b.String())
}

type standalonePrompt struct {
	prompt promptModel
}

func (s standalonePrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (s standalonePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	s.prompt, cmd = s.prompt.Update(msg)
	if s.prompt.result != nil {
		return s, tea.Quit
	}
	return s, cmd
}

func (s standalonePrompt) View() string {
	if s.prompt.result != nil {
		return ""
	}
	return appStyle.Render(s.prompt.View())
}
