// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs request bodies (Hash header) when set.
	HashKey string
	// Token is the bearer token sent with every request.
	Token string
	// LogFile is the rotated client log file; empty logs to stderr.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the offline queue.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	SyncInterval    time.Duration
	InactivityDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds the client view of the configuration from defaults,
// environment variables and the optional JSON file at jsonPath. Command-line
// flags belong to the CLI and are not parsed here.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv()
	if jsonPath == "" {
		b = b.withJSON()
	} else {
		b = b.withJSONFile(jsonPath)
	}

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// DefaultClientDSN is the offline queue database used when none is configured.
const DefaultClientDSN = "expense-sync-client.db"

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Token:   cfg.App.Token,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: dsn,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			InactivityDelay: cfg.Workers.InactivityDelay,
		},
	}
}
