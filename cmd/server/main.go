package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/server"
	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/internal/utils"
	"github.com/MKhiriev/go-notes-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultTokenDuration = 30 * 24 * time.Hour

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Command) > 0 && cfg.Command[0] == "token" {
		if err = issueToken(cfg.App, cfg.Command[1:]); err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.New(services, db, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(runCtx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// issueToken prints a bearer token for an owner: token <owner-id> [duration].
func issueToken(app config.App, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: token <owner-id> [duration]")
	}

	duration := defaultTokenDuration
	if len(args) == 2 {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("parse token duration: %w", err)
		}
		duration = d
	}

	token, err := utils.GenerateJWTToken(app.TokenIssuer, args[0], duration, app.TokenSignKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, token.String())
	return nil
}
