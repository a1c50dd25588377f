// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "one\ntwo", "q: quit")

	assert.Contains(t, page, "TITLE\n")
	assert.Contains(t, page, "  one\n  two\n")
	assert.Contains(t, page, "  q: quit\n")
	assert.Contains(t, page, "ctrl+c: выход")

	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer line", 8, "a lon..."},
		{"abcdef", 2, "ab"},
		{"Синхронизация", 8, "Синхр..."},
		{"no limit", 0, "no limit"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}
