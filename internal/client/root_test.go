// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/models"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))
	require.NotNil(t, cmd)
	assert.Equal(t, appName, cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))
	commands := [][]string{
		{"version"},
		{"status"},
		{"sync"},
		{"submit"},
		{"queue", "list"},
		{"queue", "replay"},
		{"backup", "download"},
		{"backup", "restore"},
		{"backup", "restore-stored"},
		{"backup", "list"},
		{"watch"},
	}

	for _, path := range commands {
		t.Run(path[len(path)-1], func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	jsonFlag := cmd.PersistentFlags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)
}

func TestCommandFlags(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))

	tests := []struct {
		path     []string
		flag     string
		defValue string
	}{
		{[]string{"sync"}, "force", "false"},
		{[]string{"sync"}, "mirror", "false"},
		{[]string{"sync"}, "backup", "false"},
		{[]string{"backup", "download"}, "output", ""},
		{[]string{"backup", "restore"}, "mode", "preview"},
		{[]string{"backup", "restore-stored"}, "mode", "preview"},
		{[]string{"submit"}, "entity", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			subCmd, _, err := cmd.Find(tt.path)
			require.NoError(t, err)
			f := subCmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.defValue, f.DefValue)
		})
	}
}

func TestVersionCommand_NeedsNoApp(t *testing.T) {
	failing := func(context.Context, *RootOptions) (*App, error) {
		return nil, errors.New("must not be called")
	}

	out, err := execute(t, failing, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.0.0")
	assert.Contains(t, out, "Build commit: abc123")

	out, err = execute(t, failing, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0.0","date":"2026-03-01","commit":"abc123"}`, out)
}

func TestCommand_AppFactoryError(t *testing.T) {
	failing := func(context.Context, *RootOptions) (*App, error) {
		return nil, errors.New("load config: invalid app configuration")
	}

	_, err := execute(t, failing, "status")
	assert.EqualError(t, err, "load config: invalid app configuration")
}

func TestLoadApp_InvalidConfigFile(t *testing.T) {
	_, err := loadApp(context.Background(), &RootOptions{ConfigPath: "/definitely/missing.json"})
	assert.ErrorContains(t, err, "load config")
}
