package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-vault/internal/vault"
)

func typeText(m promptModel, text string) promptModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m promptModel, t tea.KeyType) promptModel {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func TestPromptModel_Unlock(t *testing.T) {
	m := newPromptModel(false)
	require.Len(t, m.inputs, 1)

	m = typeText(m, "correct-horse")
	m = press(m, tea.KeyEnter)

	require.NotNil(t, m.result)
	assert.NoError(t, m.result.err)
	assert.Equal(t, "correct-horse", m.result.password)
}

func TestPromptModel_EmptyPassword(t *testing.T) {
	m := press(newPromptModel(false), tea.KeyEnter)

	assert.Nil(t, m.result)
	assert.NotEmpty(t, m.errMsg)
}

func TestPromptModel_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := typeText(newPromptModel(false), "abc")
		m = press(m, k)

		require.NotNil(t, m.result)
		assert.ErrorIs(t, m.result.err, vault.ErrPromptCancelled)
		assert.Empty(t, m.result.password)
	}
}

func TestPromptModel_FirstUse(t *testing.T) {
	t.Run("confirmation matches", func(t *testing.T) {
		m := newPromptModel(true)
		require.Len(t, m.inputs, 2)

		m = typeText(m, "secret")
		m = press(m, tea.KeyEnter)
		require.Nil(t, m.result)
		assert.Equal(t, 1, m.focus)

		m = typeText(m, "secret")
		m = press(m, tea.KeyEnter)

		require.NotNil(t, m.result)
		assert.Equal(t, "secret", m.result.password)
	})

	t.Run("confirmation differs", func(t *testing.T) {
		m := typeText(newPromptModel(true), "secret")
		m = press(m, tea.KeyEnter)
		m = typeText(m, "secreT")
		m = press(m, tea.KeyEnter)

		assert.Nil(t, m.result)
		assert.Contains(t, m.errMsg, "do not match")
		assert.Empty(t, m.inputs[1].Value())
	})
}

func TestPromptModel_ViewHidesPassword(t *testing.T) {
	m := typeText(newPromptModel(false), "hunter2")

	assert.NotContains(t, m.View(), "hunter2")
	assert.Contains(t, m.View(), "unlock")
	assert.Contains(t, newPromptModel(true).View(), "Set a password")
}

func TestStandalonePrompt_QuitsOnResult(t *testing.T) {
	s := standalonePrompt{prompt: newPromptModel(false)}

	model, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, model.(standalonePrompt).prompt.result)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "x", model.(standalonePrompt).prompt.result.password)
	assert.Empty(t, model.View())
}

func TestPrompter_DetachCancelsPendingPrompt(t *testing.T) {
	// A program whose context is already done drops every Send.
	stopped, stop := context.WithCancel(context.Background())
	stop()
	program := tea.NewProgram(nil, tea.WithContext(stopped))

	p := NewPrompter()
	p.attach(program)
	done := p.done

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		_, err := p.promptInProgram(ctx, program, done, false)
		errCh <- err
	}()

	p.detach()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, vault.ErrPromptCancelled)
	case <-ctx.Done():
		t.Fatal("prompt did not return after detach")
	}
}
