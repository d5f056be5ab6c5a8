// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNoTransports is returned by [New] when neither an HTTP nor a gRPC
// address is configured.
var ErrNoTransports = errors.New("no server address is configured")
