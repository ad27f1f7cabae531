package service

import (
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/adapter"
	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/store"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
)

// ClientServices groups the services the CLI runs locally. Hide and reveal
// never consult a key exchange registry here: secrets come from a password
// or a key file.
type ClientServices struct {
	StegoService       StegoService
	HistoryService     HistoryService
	KeyExchangeService ClientKeyExchangeService
}

func NewClientServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	ch, err := NewChannel(cfg.Channel)
	if err != nil {
		return nil, fmt.Errorf("error creating channel: %w", err)
	}

	historyService := NewHistoryService(storages.OperationRepository, utils.NewUUIDGenerator(), logger)

	return &ClientServices{
		StegoService: NewStegoValidationService().Wrap(
			NewStegoService(ch, cfg.Channel, nil, historyService, logger),
		),
		HistoryService:     historyService,
		KeyExchangeService: NewClientKeyExchangeService(serverAdapter, logger),
	}, nil
}
