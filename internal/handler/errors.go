// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration names neither the REST sync API address nor the gRPC health
// address. The server has nothing to serve and refuses to start.
var errNoHandlersAreCreated = errors.New("no handlers are created")
