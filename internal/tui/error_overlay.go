// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// errorOverlayModel is drawn instead of the screen until the user
// dismisses it.
type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) View() string {
	title := m.title
	if title == "" {
		title = "Ошибка"
	}
	content := offlineStyle.Render(title) + "\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
