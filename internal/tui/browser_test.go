package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-vault/internal/mock"
	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/vault"
	"github.com/MKhiriev/go-notes-vault/models"
)

type fakeVault struct {
	state vault.State
	locks int
}

func (f *fakeVault) State() vault.State { return f.state }

func (f *fakeVault) Lock() {
	f.locks++
	f.state = vault.Locked
}

func strPtr(s string) *string { return &s }

func testNotes() []models.Note {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Note{
		{NoteID: "note-2", Title: strPtr("groceries"), UpdatedAt: now},
		{NoteID: "note-1", UpdatedAt: now.Add(-time.Hour)},
	}
}

func newTestBrowser(t *testing.T) (browserModel, *mock.MockClientNoteService, *fakeVault) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockClientNoteService(ctrl)
	v := &fakeVault{state: vault.Unlocked}

	m := newBrowserModel(context.Background(), notes, v)
	return m, notes, v
}

// send feeds msg to the model and drops any command it returns.
func send(m browserModel, msg tea.Msg) browserModel {
	next, _ := m.Update(msg)
	return next.(browserModel)
}

// run feeds msg to the model, executes the returned command and feeds its
// result back. The follow-up command is returned unexecuted.
func run(t *testing.T, m browserModel, msg tea.Msg) (browserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	next, cmd = next.(browserModel).Update(cmd())
	return next.(browserModel), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowser_InitLoadsNotes(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	notes.EXPECT().List(gomock.Any()).Return(testNotes(), nil)

	msg := m.Init()()
	next, _ := m.Update(msg)
	m = next.(browserModel)

	assert.False(t, m.loading)
	assert.Len(t, m.items, 2)
	view := m.View()
	assert.Contains(t, view, "groceries")
	assert.Contains(t, view, "(untitled)")
	assert.Contains(t, view, "vault unlocked")
}

func TestBrowser_OfflineListShowsCachedNotes(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	notes.EXPECT().List(gomock.Any()).Return(testNotes(), service.ErrServerUnavailable)

	next, _ := m.Update(m.Init()())
	m = next.(browserModel)

	assert.Len(t, m.items, 2)
	assert.Contains(t, m.errMsg, "unavailable")
}

func TestBrowser_OpenCopyAndBack(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	m.loading = false
	m.items = testNotes()

	notes.EXPECT().Open(gomock.Any(), "note-1").Return(m.items[1], "Hello vault", nil)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeView, m.mode)
	assert.Contains(t, m.View(), "Hello vault")

	m, _ = run(t, m, keyRune('c'))
	assert.Equal(t, "Hello vault", copied)
	assert.Contains(t, m.status, "Copied")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.openedBody)
}

func TestBrowser_OpenFailureStaysOnList(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	m.loading = false
	m.items = testNotes()

	notes.EXPECT().Open(gomock.Any(), "note-2").
		Return(m.items[0], "", vault.ErrUndecryptable)

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, vault.ErrUndecryptable.Error(), m.errMsg)
}

func TestBrowser_CreateNote(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	m.loading = false

	m = send(m, keyRune('n'))
	require.Equal(t, modeEdit, m.mode)
	require.True(t, m.editNew)

	for _, r := range "todo" {
		m = send(m, keyRune(r))
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "buy milk" {
		m = send(m, keyRune(r))
	}

	created := models.Note{NoteID: "note-3", Title: strPtr("todo")}
	notes.EXPECT().Create(gomock.Any(), gomock.Any(), "buy milk").
		DoAndReturn(func(_ context.Context, title *string, _ string) (models.Note, error) {
			require.NotNil(t, title)
			assert.Equal(t, "todo", *title)
			return created, nil
		})

	m, reload := run(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Note saved.", m.status)
	assert.True(t, m.loading)
	assert.NotNil(t, reload)
}

func TestBrowser_CreateWithoutTitle(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	m.loading = false

	m = send(m, keyRune('n'))
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(m, keyRune('x'))

	notes.EXPECT().Create(gomock.Any(), gomock.Nil(), "x").Return(models.Note{NoteID: "n"}, nil)

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, modeList, m.mode)
}

func TestBrowser_EditNoteKeepsID(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	m.loading = false
	m.items = testNotes()
	m.mode = modeView
	m.opened = m.items[0]
	m.openedBody = "eggs"

	m = send(m, keyRune('e'))
	require.Equal(t, modeEdit, m.mode)
	assert.False(t, m.editNew)
	assert.Equal(t, "groceries", m.editTitle.Value())
	assert.Equal(t, "eggs", m.editBody.Value())

	notes.EXPECT().Update(gomock.Any(), "note-2", gomock.Any(), "eggs").Return(m.items[0], errors.New("boom"))

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, modeEdit, m.mode)
	assert.False(t, m.busy)
	assert.NotEmpty(t, m.errMsg)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeView, m.mode)
}

func TestBrowser_DeleteConfirm(t *testing.T) {
	m, notes, _ := newTestBrowser(t)
	m.loading = false
	m.items = testNotes()

	m = send(m, keyRune('d'))
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), "groceries")

	m = send(m, keyRune('n'))
	assert.Equal(t, modeList, m.mode)

	notes.EXPECT().Delete(gomock.Any(), "note-2").Return(nil)
	m = send(m, keyRune('d'))
	m, reload := run(t, m, keyRune('y'))

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Note deleted.", m.status)
	assert.True(t, m.loading)
	assert.NotNil(t, reload)
}

func TestBrowser_LockKey(t *testing.T) {
	m, _, v := newTestBrowser(t)
	m.loading = false

	m = send(m, keyRune('l'))

	assert.Equal(t, 1, v.locks)
	assert.Contains(t, m.View(), "vault locked")
}

func TestBrowser_PromptRequestRoundTrip(t *testing.T) {
	m, _, _ := newTestBrowser(t)
	m.loading = false

	reply := make(chan promptResult, 1)
	m = send(m, promptRequestMsg{firstUse: false, reply: reply})
	require.NotNil(t, m.prompt)
	assert.Contains(t, m.View(), "unlock")

	// Keys go to the prompt, not to the list.
	for _, r := range "pw" {
		m = send(m, keyRune(r))
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.prompt)
	res := <-reply
	assert.NoError(t, res.err)
	assert.Equal(t, "pw", res.password)
}

func TestBrowser_SecondPromptIsCancelled(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	first := make(chan promptResult, 1)
	second := make(chan promptResult, 1)
	m = send(m, promptRequestMsg{reply: first})
	m = send(m, promptRequestMsg{reply: second})

	res := <-second
	assert.ErrorIs(t, res.err, vault.ErrPromptCancelled)
	assert.NotNil(t, m.prompt)
}

func TestBrowser_QuitFromList(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
