// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import "errors"

var (
	ErrMalformedSnapshot        = errors.New("malformed snapshot")
	ErrUnsupportedFormatVersion = errors.New("unsupported snapshot format version")
	ErrSealedArchive            = errors.New("archive is sealed and no passphrase is configured")
)
