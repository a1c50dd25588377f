// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-expense-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the active screen:
// 1) handles global Ctrl+C quit
// 2) toggles the build info overlay
// 3) delegates all other messages to the screen
type RootModel struct {
	current   tea.Model
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel opens screen and keeps buildInfo for the "v" overlay.
func NewRootModel(screen tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		current:   screen,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}
