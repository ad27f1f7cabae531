// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no listener
	// could be bound for the given handlers.
	errNoServersAreCreated = errors.New("no listeners configured")
	errNoServersToRun      = errors.New("nothing to run")
)
