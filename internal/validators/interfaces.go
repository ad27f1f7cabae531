// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the service
// layer.
//
// [StegoValidator] covers hide, reveal, capacity, analyze, key exchange and
// history requests. Rules that need the decoded carrier, such as whether a
// density fits the carrier, are left to the carrier package.
package validators

import "context"

// Validator checks obj. When fields are given only those rules run; an
// unknown field name yields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
