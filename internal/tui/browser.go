package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/vault"
	"github.com/MKhiriev/go-notes-vault/models"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// VaultState is the part of the vault session the browser shows and controls.
type VaultState interface {
	State() vault.State
	Lock()
}

type browserMode int

const (
	modeList browserMode = iota
	modeView
	modeEdit
	modeConfirmDelete
)

type browserModel struct {
	ctx   context.Context
	notes service.ClientNoteService
	vault VaultState

	mode    browserMode
	items   []models.Note
	idx     int
	loading bool
	busy    bool
	status  string
	errMsg  string

	// opened holds the note shown in modeView and edited in modeEdit.
	opened     models.Note
	openedBody string

	editNew   bool
	editTitle textinput.Model
	editBody  textarea.Model

	prompt      *promptModel
	promptReply chan<- promptResult
}

func newBrowserModel(ctx context.Context, notes service.ClientNoteService, v VaultState) browserModel {
	return browserModel{
		ctx:     ctx,
		notes:   notes,
		vault:   v,
		loading: true,
	}
}

func (m browserModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case promptRequestMsg:
		if m.prompt != nil {
			msg.reply <- promptResult{err: vault.ErrPromptCancelled}
			return m, nil
		}
		p := newPromptModel(msg.firstUse)
		m.prompt = &p
		m.promptReply = msg.reply
		return m, textinput.Blink
	case notesLoadedMsg:
		m.loading = false
		m.items = msg.notes
		m.clampIndex()
		m.setError(msg.err)
		return m, nil
	case noteOpenedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.opened = msg.note
		m.openedBody = msg.body
		m.mode = modeView
		return m, nil
	case noteSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Note saved."
		m.mode = modeList
		m.opened = models.Note{}
		m.openedBody = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	case noteDeletedMsg:
		m.busy = false
		m.mode = modeList
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Note deleted."
		m.loading = true
		return m, m.cmdLoadNotes()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to the clipboard."
			return m, nil
		}
		m.status = "Copied to the clipboard."
		return m, nil
	}

	if m.prompt != nil {
		return m.updatePrompt(msg)
	}

	switch m.mode {
	case modeView:
		return m.updateView(msg)
	case modeEdit:
		return m.updateEdit(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m browserModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	*m.prompt, cmd = m.prompt.Update(msg)
	if m.prompt.result == nil {
		return m, cmd
	}

	m.promptReply <- *m.prompt.result
	m.prompt = nil
	m.promptReply = nil
	return m, nil
}

func (m browserModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.lock):
		m.vault.Lock()
		m.status = "Vault locked."
	case key.Matches(keyMsg, keys.newNote):
		m.startEdit(true, models.Note{}, "")
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.enter):
		if note, ok := m.selected(); ok && !m.busy {
			m.busy = true
			m.status = ""
			return m, m.cmdOpen(note.NoteID)
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m browserModel) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc), keyMsg.String() == "q":
		m.mode = modeList
		m.opened = models.Note{}
		m.openedBody = ""
		m.status = ""
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(m.openedBody)
	case key.Matches(keyMsg, keys.edit):
		m.startEdit(false, m.opened, m.openedBody)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.lock):
		m.vault.Lock()
		m.mode = modeList
		m.opened = models.Note{}
		m.openedBody = ""
		m.status = "Vault locked."
	}
	return m, nil
}

func (m browserModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.editNew {
				m.mode = modeList
			} else {
				m.mode = modeView
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			var cmd tea.Cmd
			if m.editTitle.Focused() {
				m.editTitle.Blur()
				cmd = m.editBody.Focus()
			} else {
				m.editBody.Blur()
				cmd = m.editTitle.Focus()
			}
			return m, cmd
		case key.Matches(keyMsg, keys.save):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.cmdSave()
		}
	}

	var cmd tea.Cmd
	if m.editTitle.Focused() {
		m.editTitle, cmd = m.editTitle.Update(msg)
	} else {
		m.editBody, cmd = m.editBody.Update(msg)
	}
	return m, cmd
}

func (m browserModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		note, ok := m.selected()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(note.NoteID)
	case key.Matches(keyMsg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *browserModel) startEdit(isNew bool, note models.Note, body string) {
	title := textinput.New()
	title.Placeholder = "title (stored unencrypted)"
	title.CharLimit = 200
	title.Width = 50
	title.SetValue(note.NoteTitle())

	area := textarea.New()
	area.Placeholder = "note"
	area.SetWidth(60)
	area.SetHeight(12)
	area.SetValue(body)

	if isNew {
		title.Focus()
	} else {
		area.Focus()
	}

	m.mode = modeEdit
	m.editNew = isNew
	m.editTitle = title
	m.editBody = area
	m.opened = note
	m.status = ""
	m.errMsg = ""
}

func (m *browserModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *browserModel) setError(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	if errors.Is(err, vault.ErrPromptCancelled) {
		m.errMsg = "Unlock cancelled."
		return
	}
	m.errMsg = errorText(err)
}

func (m browserModel) selected() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m browserModel) cmdLoadNotes() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		items, err := notes.List(ctx)
		return notesLoadedMsg{notes: items, err: err}
	}
}

func (m browserModel) cmdOpen(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, body, err := notes.Open(ctx, noteID)
		return noteOpenedMsg{note: note, body: body, err: err}
	}
}

func (m browserModel) cmdSave() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	body := m.editBody.Value()

	var title *string
	if t := strings.TrimSpace(m.editTitle.Value()); t != "" {
		title = &t
	}

	if m.editNew {
		return func() tea.Msg {
			note, err := notes.Create(ctx, title, body)
			return noteSavedMsg{note: note, err: err}
		}
	}

	noteID := m.opened.NoteID
	return func() tea.Msg {
		note, err := notes.Update(ctx, noteID, title, body)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m browserModel) cmdDelete(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return noteDeletedMsg{noteID: noteID, err: notes.Delete(ctx, noteID)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func (m browserModel) View() string {
	if m.prompt != nil {
		return appStyle.Render(m.prompt.View())
	}

	switch m.mode {
	case modeView:
		return renderPage(
			titleOrPlaceholder(m.opened.NoteTitle()),
			m.openedBody+m.footer(),
			"c: copy │ e: edit │ l: lock │ esc: back",
		)
	case modeEdit:
		heading := "Edit note"
		if m.editNew {
			heading = "New note"
		}
		data := m.editTitle.View() + "\n\n" + m.editBody.View() + m.footer()
		return renderPage(heading, data, "ctrl+s: save │ tab: switch field │ esc: cancel")
	case modeConfirmDelete:
		note, _ := m.selected()
		data := fmt.Sprintf("Delete %q? This cannot be undone.", titleOrPlaceholder(note.NoteTitle()))
		return renderPage("Delete note", data+m.footer(), "y: delete │ n: keep")
	default:
		return renderPage(m.listHeading(), m.listBody()+m.footer(),
			"enter: open │ n: new │ d: delete │ r: refresh │ l: lock │ q: quit")
	}
}

func (m browserModel) listHeading() string {
	return fmt.Sprintf("Notes (vault %s)", m.vault.State())
}

func (m browserModel) listBody() string {
	if m.loading {
		return "Loading..."
	}
	if len(m.items) == 0 {
		return "No notes yet. Press n to write one."
	}

	var b strings.Builder
	for i, note := range m.items {
		line := fmt.Sprintf("%-40s %s",
			fitText(titleOrPlaceholder(note.NoteTitle()), 40),
			note.UpdatedAt.Local().Format("2006-01-02 15:04"))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m browserModel) footer() string {
	var b strings.Builder
	if m.busy {
		b.WriteString("\n\nWorking...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}
