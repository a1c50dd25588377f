// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	replay    key.Binding
	sync      key.Binding
	forceSync key.Binding
	refresh   key.Binding
	copy      key.Binding
	dismiss   key.Binding
	quit      key.Binding
}

var keys = keyMap{
	replay:    key.NewBinding(key.WithKeys("r")),
	sync:      key.NewBinding(key.WithKeys("s")),
	forceSync: key.NewBinding(key.WithKeys("f")),
	refresh:   key.NewBinding(key.WithKeys("u")),
	copy:      key.NewBinding(key.WithKeys("c")),
	dismiss:   key.NewBinding(key.WithKeys("enter", "esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
}
