package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-vault/internal/adapter"
	"github.com/MKhiriev/go-notes-vault/internal/client"
	"github.com/MKhiriev/go-notes-vault/internal/config"
	"github.com/MKhiriev/go-notes-vault/internal/crypto"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/internal/tui"
	"github.com/MKhiriev/go-notes-vault/internal/vault"
	"github.com/MKhiriev/go-notes-vault/internal/wallet"
	"github.com/MKhiriev/go-notes-vault/internal/workers"
	"github.com/MKhiriev/go-notes-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if len(cfg.Command) > 0 && cfg.Command[0] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("notes-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, client.UserMessage(err))
		if errors.Is(err, client.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) error {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("migrate local storage: %w", err)
	}
	storages := store.NewClientStorages(db, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	provider := crypto.NewStdProvider()
	envelope := crypto.NewEnvelope(crypto.NewKeyDerivation(provider), crypto.NewCodec(provider))

	prompter := tui.NewPrompter()
	source, err := newSecretSource(cfg, prompter, storages.ProfileRepository, envelope)
	if err != nil {
		return err
	}

	session := vault.NewSession(source, envelope,
		vault.WithIdleTimeout(cfg.Vault.IdleTimeout),
		vault.WithLogger(log),
	)

	services := service.NewClientServices(session, storages.LocalNoteRepository, serverAdapter, log)

	app, err := client.NewApp(client.Options{
		Notes:        services.NoteService,
		Vault:        session,
		Browser:      tui.New(services.NoteService, session, prompter, log),
		Workers:      workers.NewWorkers(workers.NewVaultExpiryWorker(services.ExpiryJob, cfg.Workers.ExpiryCheckInterval)),
		Server:       serverAdapter,
		UnlockMethod: cfg.App.UnlockMethod,
		In:           os.Stdin,
		Out:          os.Stdout,
	}, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx, cfg.Command)
}

func newSecretSource(cfg *config.ClientConfig, prompter vault.Prompter, profiles vault.ProfileStore, envelope crypto.Envelope) (vault.SecretSource, error) {
	if cfg.App.UnlockMethod != config.UnlockWallet {
		return vault.NewPasswordSource(prompter, profiles, envelope), nil
	}

	if cfg.Wallet.RPCURL != "" {
		return vault.NewWalletSource(wallet.NewRPCAgent(cfg.Wallet.RPCURL, cfg.Wallet.Timeout), cfg.Wallet.Timeout), nil
	}

	agent, err := wallet.NewLocalSignerFromFile(cfg.Wallet.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("load wallet key: %w", err)
	}
	return vault.NewWalletSource(agent, cfg.Wallet.Timeout), nil
}
