package models

import "time"

// OperationType names a channel operation recorded in the history.
type OperationType string

const (
	OperationHide   OperationType = "hide"
	OperationReveal OperationType = "reveal"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	return t == OperationHide || t == OperationReveal
}

// Operation is one history record. It never holds the message, the
// secret or the carrier itself; only sizes and the outcome are kept.
type Operation struct {
	// ID is a UUID v7 assigned when the record is saved.
	ID string `json:"id"`

	// Type is hide or reveal.
	Type OperationType `json:"operation"`

	// CarrierKind is text, image or audio.
	CarrierKind string `json:"carrier_kind"`

	// Success is false when the operation returned an error.
	Success bool `json:"success"`

	// MessageLength is the plaintext size in bytes. Zero on a failed reveal.
	MessageLength int `json:"message_length"`

	// CarrierUnits is the number of embeddable units of the carrier.
	CarrierUnits int `json:"carrier_units"`

	// BitsPerUnit is the density the operation ran with.
	BitsPerUnit int `json:"bits_per_unit"`

	// DurationMS is the wall time spent in the channel.
	DurationMS int64 `json:"duration_ms"`

	// Fingerprint is the artifact fingerprint of a successful operation.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Error is the failure message, empty on success.
	Error string `json:"error,omitempty"`

	// CreatedAt is the UTC time the record was written.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Operation model.
func (o Operation) TableName() string {
	return "operations"
}

// HistoryFilter narrows List and Clear. Zero fields match everything.
type HistoryFilter struct {
	Type        OperationType `json:"operation,omitempty"`
	CarrierKind string        `json:"carrier_kind,omitempty"`
	Success     *bool         `json:"success,omitempty"`

	// Limit caps List results; zero means the store default.
	Limit uint64 `json:"limit,omitempty"`
	// Offset skips the newest Offset records.
	Offset uint64 `json:"offset,omitempty"`
}

// HistoryResponse is the body of GET /api/history.
type HistoryResponse struct {
	Operations []Operation `json:"operations"`
	Length     int         `json:"length"`
}

// ClearResponse reports how many records a clear removed.
type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}
