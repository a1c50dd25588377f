// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptyPassphrase = errors.New("passphrase is empty")
	ErrNotSealed       = errors.New("data is not sealed")
	ErrOpenFailed      = errors.New("cannot open sealed data")
)
