package service

import (
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/store"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
)

type Services struct {
	StegoService       StegoService
	HistoryService     HistoryService
	KeyExchangeService KeyExchangeService
	AppInfoService     AppInfoService
}

// NewServices wires the server services. registry is shared with the
// session sweeper.
func NewServices(storages *store.Storages, registry SecretRegistry, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	ch, err := NewChannel(cfg.Channel)
	if err != nil {
		return nil, fmt.Errorf("error creating channel: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	historyService := NewHistoryService(storages.OperationRepository, utils.NewUUIDGenerator(), logger)
	stegoService := NewStegoValidationService().Wrap(
		NewStegoService(ch, cfg.Channel, registry, historyService, logger),
	)

	return &Services{
		StegoService:       stegoService,
		HistoryService:     historyService,
		KeyExchangeService: NewKeyExchangeService(registry, cfg.App, logger),
		AppInfoService:     appInfoService,
	}, nil
}
