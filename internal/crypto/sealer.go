// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealedMagic prefixes every sealed blob so readers can tell it apart from
// a plain gzip stream.
var sealedMagic = []byte("EXSSEAL1")

const saltSize = 16

// sealer is the private implementation of [Sealer].
type sealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &sealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}, nil
}

// IsSealed reports whether data starts with the sealed-blob magic.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealedMagic)
}

func (s *sealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	header := make([]byte, 0, len(sealedMagic)+saltSize+len(nonce))
	header = append(header, sealedMagic...)
	header = append(header, salt...)
	header = append(header, nonce...)

	// the header is authenticated as additional data
	ciphertext := aead.Seal(nil, nonce, plaintext, header)
	return append(header, ciphertext...), nil
}

func (s *sealer) Open(sealed []byte) ([]byte, error) {
	if !IsSealed(sealed) {
		return nil, ErrNotSealed
	}

	headerLen := len(sealedMagic) + saltSize + chacha20poly1305.NonceSizeX
	if len(sealed) < headerLen+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}

	header := sealed[:headerLen]
	salt := header[len(sealedMagic) : len(sealedMagic)+saltSize]
	nonce := header[len(sealedMagic)+saltSize:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, sealed[headerLen:], header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return plaintext, nil
}

func (s *sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, chacha20poly1305.KeySize)
}
