package service

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	"github.com/MKhiriev/go-notes-vault/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports the configured version, or the one injected at
// build time when the configuration leaves it empty.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	version := cfg.Version
	if version == "" && build.HasVersion() {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
