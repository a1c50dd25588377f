// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects backup archives at rest with a passphrase.
//
// Layout of a sealed blob:
//
//	magic (8) | salt (16) | nonce (24) | XChaCha20-Poly1305 ciphertext
//
// The key is derived from the passphrase and the per-blob salt with
// Argon2id. The passphrase itself is never stored.
type Sealer interface {
	// Seal encrypts plaintext under a fresh salt and nonce.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. A wrong passphrase or a tampered blob yields
	// ErrOpenFailed.
	Open(sealed []byte) ([]byte, error)
}
