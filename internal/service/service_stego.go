// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/analysis"
	"github.com/MKhiriev/go-stego-channel/internal/carrier"
	"github.com/MKhiriev/go-stego-channel/internal/channel"
	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/crypto"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/media"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

// stegoService decodes media, resolves the secret, runs the channel and
// encodes the artifact back into the carrier's original format.
type stegoService struct {
	channel *channel.Channel

	// bitsPerUnit is used when a request leaves the density at zero.
	bitsPerUnit int

	// registry resolves secrets of completed key exchanges. Nil on the CLI.
	registry SecretRegistry

	// history records every hide and reveal. Nil disables recording.
	history HistoryService

	logger *logger.Logger
}

// NewChannel builds a [channel.Channel] from the KDF settings in cfg.
func NewChannel(cfg config.Channel) (*channel.Channel, error) {
	deriver, err := crypto.NewDeriver(crypto.Algorithm(cfg.KDF))
	if err != nil {
		return nil, err
	}

	opts := []channel.Option{channel.WithDeriver(deriver)}
	if cfg.Iterations > 0 {
		opts = append(opts, channel.WithIterations(cfg.Iterations))
	}
	return channel.New(opts...)
}

func NewStegoService(ch *channel.Channel, cfg config.Channel, registry SecretRegistry, history HistoryService, logger *logger.Logger) StegoService {
	return &stegoService{
		channel:     ch,
		bitsPerUnit: cfg.BitsPerUnit,
		registry:    registry,
		history:     history,
		logger:      logger,
	}
}

// Hide embeds req.Message. The outcome is written to the history whether
// or not it succeeded; a failing history store never fails the call.
func (s *stegoService) Hide(ctx context.Context, req models.HideRequest) (models.HideResponse, error) {
	start := time.Now()
	op := models.Operation{
		Type:          models.OperationHide,
		CarrierKind:   req.Kind,
		MessageLength: len(req.Message),
	}

	resp, err := s.hide(ctx, req, &op)
	s.record(ctx, op, start, err)
	return resp, err
}

func (s *stegoService) hide(ctx context.Context, req models.HideRequest, op *models.Operation) (models.HideResponse, error) {
	log := logger.FromContext(ctx)

	c, format, err := s.decode(req.Kind, req.Carrier, op)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Hide").Msg("error decoding carrier")
		return models.HideResponse{}, err
	}
	op.BitsPerUnit = s.density(c, req.BitsPerUnit)

	secret, release, err := s.resolveSecret(ctx, req.Secret, req.Password)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Hide").Msg("error resolving secret")
		return models.HideResponse{}, err
	}
	defer release()

	res, err := s.channel.Hide(ctx, c, []byte(req.Message), secret, op.BitsPerUnit)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Hide").Str("kind", op.CarrierKind).Msg("hide failed")
		return models.HideResponse{}, err
	}

	artifact, err := media.Encode(res.Artifact, format)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Hide").Msg("error encoding artifact")
		return models.HideResponse{}, fmt.Errorf("encode artifact: %w", err)
	}
	op.Fingerprint = res.Fingerprint

	log.Debug().
		Str("func", "stegoService.Hide").
		Str("kind", op.CarrierKind).
		Int("required_bits", res.Plan.RequiredBits).
		Int("available_bits", res.Plan.AvailableBits).
		Msg("message hidden")

	return models.HideResponse{
		Artifact:    artifact,
		Format:      string(format),
		Fingerprint: res.Fingerprint,
		Plan:        toPlan(res.Plan),
		Timestamp:   res.Timestamp,
	}, nil
}

// Reveal recovers the message hidden in req.Carrier.
func (s *stegoService) Reveal(ctx context.Context, req models.RevealRequest) (models.RevealResponse, error) {
	start := time.Now()
	op := models.Operation{
		Type:        models.OperationReveal,
		CarrierKind: req.Kind,
	}

	resp, err := s.reveal(ctx, req, &op)
	s.record(ctx, op, start, err)
	return resp, err
}

func (s *stegoService) reveal(ctx context.Context, req models.RevealRequest, op *models.Operation) (models.RevealResponse, error) {
	log := logger.FromContext(ctx)

	c, _, err := s.decode(req.Kind, req.Carrier, op)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Reveal").Msg("error decoding carrier")
		return models.RevealResponse{}, err
	}
	op.BitsPerUnit = s.density(c, req.BitsPerUnit)

	secret, release, err := s.resolveSecret(ctx, req.Secret, req.Password)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Reveal").Msg("error resolving secret")
		return models.RevealResponse{}, err
	}
	defer release()

	res, err := s.channel.Reveal(ctx, c, secret, op.BitsPerUnit)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Reveal").Str("kind", op.CarrierKind).Msg("reveal failed")
		return models.RevealResponse{}, err
	}
	op.MessageLength = len(res.Message)
	op.Fingerprint = res.Fingerprint

	resp := models.RevealResponse{
		Message:     string(res.Message),
		Fingerprint: res.Fingerprint,
		Timestamp:   res.Timestamp,
	}
	if req.ExpectedFingerprint != "" {
		match := res.MatchesFingerprint(req.ExpectedFingerprint)
		resp.FingerprintMatch = &match
	}
	return resp, nil
}

// Capacity reports how much plaintext the carrier holds. It needs no secret
// and writes no history.
func (s *stegoService) Capacity(ctx context.Context, req models.CapacityRequest) (models.CapacityResponse, error) {
	log := logger.FromContext(ctx)

	var op models.Operation
	c, _, err := s.decode(req.Kind, req.Carrier, &op)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Capacity").Msg("error decoding carrier")
		return models.CapacityResponse{}, err
	}

	bpu := s.density(c, req.BitsPerUnit)
	available, err := carrier.CapacityBits(c, bpu)
	if err != nil {
		return models.CapacityResponse{}, err
	}

	required := 8 * (req.MessageLength + crypto.Overhead)
	maxMessage := available/8 - crypto.Overhead
	if maxMessage < 0 {
		maxMessage = 0
	}
	fits := required <= available

	plan := models.Plan{
		Kind:          c.Kind().String(),
		BitsPerUnit:   bpu,
		RequiredBits:  required,
		AvailableBits: available,
	}
	if fits {
		plan.UnitsTouched = (required + bpu - 1) / bpu
	}

	return models.CapacityResponse{
		Plan:             plan,
		MaxMessageLength: maxMessage,
		Fits:             fits,
	}, nil
}

// Analyze scores how detectable a hidden payload in req.Carrier would be.
func (s *stegoService) Analyze(ctx context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error) {
	log := logger.FromContext(ctx)

	var op models.Operation
	c, _, err := s.decode(req.Kind, req.Carrier, &op)
	if err != nil {
		log.Err(err).Str("func", "stegoService.Analyze").Msg("error decoding carrier")
		return models.AnalyzeResponse{}, err
	}

	report, err := analysis.Analyze(c)
	if err != nil {
		return models.AnalyzeResponse{}, err
	}

	return models.AnalyzeResponse{
		Kind:                 report.Kind.String(),
		DetectionProbability: report.DetectionProbability,
		SecurityScore:        report.SecurityScore,
		Level:                string(report.Level),
		Details:              report.Details,
		Recommendations:      report.Recommendations,
	}, nil
}

// decode parses the kind and the media and fills the carrier fields of op.
func (s *stegoService) decode(kindName string, data []byte, op *models.Operation) (carrier.Carrier, media.Format, error) {
	kind, err := carrier.ParseKind(kindName)
	if err != nil {
		return nil, media.FormatUnknown, err
	}
	op.CarrierKind = kind.String()

	c, format, err := media.Decode(kind, data)
	if err != nil {
		return nil, media.FormatUnknown, err
	}
	op.CarrierUnits = c.Units()
	return c, format, nil
}

// density picks the bits per unit: the requested value, else the configured
// default when the carrier accepts it, else the carrier default.
func (s *stegoService) density(c carrier.Carrier, requested int) int {
	if requested != 0 {
		return requested
	}
	if bpu, err := carrier.ValidateBitsPerUnit(c, s.bitsPerUnit); err == nil {
		return bpu
	}
	return carrier.DefaultBitsPerUnit
}

// resolveSecret returns the secret for one operation and a func that wipes
// any copy it made. A key exchange secret is consumed from the registry.
func (s *stegoService) resolveSecret(ctx context.Context, raw []byte, password string) ([]byte, func(), error) {
	switch {
	case len(raw) > 0:
		return raw, func() {}, nil
	case password != "":
		secret := []byte(password)
		return secret, func() { crypto.Zero(secret) }, nil
	}

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok || s.registry == nil {
		return nil, nil, ErrNoSecretProvided
	}

	secret, err := s.registry.Take(sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("error taking key exchange secret: %w", err)
	}
	return secret, func() { crypto.Zero(secret) }, nil
}

func (s *stegoService) record(ctx context.Context, op models.Operation, start time.Time, opErr error) {
	if s.history == nil {
		return
	}

	op.DurationMS = time.Since(start).Milliseconds()
	op.Success = opErr == nil
	if opErr != nil {
		op.Error = opErr.Error()
		op.Fingerprint = ""
	}

	if err := s.history.Record(ctx, op); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "stegoService.record").
			Str("operation", string(op.Type)).
			Msg("error recording operation history")
	}
}

func toPlan(p carrier.EmbedPlan) models.Plan {
	return models.Plan{
		Kind:          p.Kind.String(),
		BitsPerUnit:   p.BitsPerUnit,
		RequiredBits:  p.RequiredBits,
		AvailableBits: p.AvailableBits,
		UnitsTouched:  p.UnitsTouched,
	}
}
