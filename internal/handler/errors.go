// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config enables neither HTTP nor
// gRPC; the server refuses to start.
var errNoHandlersAreCreated = errors.New("no transport handlers configured: set an HTTP or gRPC address")
