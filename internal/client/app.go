package client

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/vault"
)

// ErrUsage is returned for an unknown subcommand or bad arguments.
var ErrUsage = errors.New("usage error")

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

const usage = `usage: notes-client [flags] [command]

commands:
  (none)                 interactive browser
  list                   list notes, newest first
  new [-title T]         create a note from stdin
  open [-copy] <id>      print a note (or copy it to the clipboard)
  edit [-title T] <id>   replace a note body with stdin
  delete <id>            delete a note
  unlock                 check the password or wallet unlock
  status                 show vault and server status
  version                print build information`

// App is the notes client.
type App struct {
	notes   service.ClientNoteService
	vault   Vault
	browser Browser
	workers Runner
	server  VersionSource
	method  string

	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// Options are the collaborators of an [App].
type Options struct {
	Notes   service.ClientNoteService
	Vault   Vault
	Browser Browser
	Workers Runner
	Server  VersionSource
	// UnlockMethod is shown by the status command.
	UnlockMethod string

	In  io.Reader
	Out io.Writer
}

// NewApp returns an App. In and Out default to empty input and
// [io.Discard].
func NewApp(opts Options, logger *logger.Logger) (*App, error) {
	if opts.Notes == nil || opts.Vault == nil {
		return nil, errors.New("client app requires a note service and a vault")
	}

	app := &App{
		notes:   opts.Notes,
		vault:   opts.Vault,
		browser: opts.Browser,
		workers: opts.Workers,
		server:  opts.Server,
		method:  opts.UnlockMethod,
		in:      opts.In,
		out:     opts.Out,
		logger:  logger,
	}
	if app.in == nil {
		app.in = strings.NewReader("")
	}
	if app.out == nil {
		app.out = io.Discard
	}

	return app, nil
}

// Run implements [Client]. The vault is locked when Run returns.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.vault.Lock()

	if len(args) == 0 {
		return a.browse(ctx)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", cmd).Msg("running client command")

	switch cmd {
	case "list":
		return a.list(ctx)
	case "new":
		return a.create(ctx, rest)
	case "open":
		return a.open(ctx, rest)
	case "edit":
		return a.edit(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "unlock":
		return a.unlock(ctx)
	case "status":
		return a.status(ctx)
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q\n%s", ErrUsage, cmd, usage)
	}
}

func (a *App) browse(ctx context.Context) error {
	if a.browser == nil {
		return fmt.Errorf("%w: interactive mode is not available", ErrUsage)
	}

	if a.workers != nil {
		a.workers.Run(ctx)
		defer a.workers.Stop()
	}

	return a.browser.Browse(ctx)
}

func (a *App) list(ctx context.Context) error {
	notes, err := a.notes.List(ctx)
	if err != nil && !errors.Is(err, service.ErrServerUnavailable) {
		return fmt.Errorf("list notes: %w", err)
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.list").Msg("server unavailable, listing cached notes")
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, note := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", note.NoteID, note.UpdatedAt.Local().Format(time.DateTime), note.NoteTitle())
	}
	return w.Flush()
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("new")
	title := fs.String("title", "", "note title (stored unencrypted)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	body, err := a.readBody()
	if err != nil {
		return err
	}

	note, err := a.notes.Create(ctx, optional(*title), body)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	fmt.Fprintln(a.out, note.NoteID)
	return nil
}

func (a *App) open(ctx context.Context, args []string) error {
	fs := newFlagSet("open")
	copyBody := fs.Bool("copy", false, "copy the note to the clipboard instead of printing it")
	noteID, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	_, body, err := a.notes.Open(ctx, noteID)
	if err != nil {
		return fmt.Errorf("open note: %w", err)
	}

	if *copyBody {
		if err := copyToClipboard(body); err != nil {
			return fmt.Errorf("copy note: %w", err)
		}
		fmt.Fprintln(a.out, "copied to clipboard")
		return nil
	}

	fmt.Fprintln(a.out, body)
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit")
	title := fs.String("title", "", "new note title")
	noteID, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	body, err := a.readBody()
	if err != nil {
		return err
	}

	if _, err := a.notes.Update(ctx, noteID, optional(*title), body); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	noteID, err := parseWithID(newFlagSet("delete"), args)
	if err != nil {
		return err
	}

	if err := a.notes.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (a *App) unlock(ctx context.Context) error {
	if err := a.vault.Unlock(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "vault unlocked")
	return nil
}

func (a *App) status(ctx context.Context) error {
	fmt.Fprintf(a.out, "unlock method: %s\n", a.method)
	fmt.Fprintf(a.out, "vault: %s\n", a.vault.State())

	hasProfile, err := a.vault.HasProfile(ctx)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if a.method == "" || a.method == "password" {
		fmt.Fprintf(a.out, "password set: %t\n", hasProfile)
	}

	if a.server == nil {
		return nil
	}
	version, err := a.server.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.status").Msg("error getting server version")
		fmt.Fprintln(a.out, "server: unavailable")
		return nil
	}
	fmt.Fprintf(a.out, "server: %s\n", version)
	return nil
}

func (a *App) readBody() (string, error) {
	data, err := io.ReadAll(bufio.NewReader(a.in))
	if err != nil {
		return "", fmt.Errorf("read note body: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		return "", fmt.Errorf("%w: %s needs exactly one note id", ErrUsage, fs.Name())
	}
	return fs.Arg(0), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// UserMessage is the text printed for a failed command. Vault errors carry
// their own message; the cause stays in the log.
func UserMessage(err error) string {
	if msg, ok := vault.Message(err); ok {
		return msg
	}
	return err.Error()
}
