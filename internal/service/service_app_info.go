package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports cfg.Version without a leading "v", so that
// "v1.2.0" from a git tag and "1.2.0" from the config read the same.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimPrefix(strings.TrimSpace(cfg.Version), "v")
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("app version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
