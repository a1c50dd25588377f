// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// newTestSealer keeps Argon2id cheap so the suite stays fast.
func newTestSealer(passphrase string) *sealer {
	return &sealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  1024,
		argonThreads: 1,
	}
}

func TestNewSealer_EmptyPassphrase(t *testing.T) {
	if _, err := NewSealer(""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("NewSealer(\"\") error = %v, want ErrEmptyPassphrase", err)
	}
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newTestSealer("correct horse battery staple")
	plaintext := []byte("archive bytes")

	sealed, err := s.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if !IsSealed(sealed) {
		t.Fatalf("sealed blob has no magic header")
	}
	if bytes.Contains(sealed, plaintext) {
		t.Fatalf("sealed blob contains the plaintext")
	}

	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open = %q, want %q", got, plaintext)
	}
}

func TestSealer_FreshSaltAndNonce(t *testing.T) {
	s := newTestSealer("pass")

	a, err := s.Seal([]byte("same"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := s.Seal([]byte("same"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("expected two seals of the same input to differ")
	}
}

func TestSealer_WrongPassphrase(t *testing.T) {
	sealed, err := newTestSealer("right").Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = newTestSealer("wrong").Open(sealed)
	if !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("Open error = %v, want ErrOpenFailed", err)
	}
}

func TestSealer_TamperedHeader(t *testing.T) {
	s := newTestSealer("pass")
	sealed, err := s.Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	// flip one salt byte
	sealed[len(sealedMagic)] ^= 0xFF

	if _, err = s.Open(sealed); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("Open error = %v, want ErrOpenFailed", err)
	}
}

func TestSealer_OpenInvalidInput(t *testing.T) {
	s := newTestSealer("pass")

	if _, err := s.Open([]byte("plain gzip")); !errors.Is(err, ErrNotSealed) {
		t.Fatalf("Open(plain) error = %v, want ErrNotSealed", err)
	}
	if _, err := s.Open(append([]byte{}, sealedMagic...)); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("Open(short) error = %v, want ErrOpenFailed", err)
	}
}
