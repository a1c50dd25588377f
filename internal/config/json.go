// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Token         string   `json:"token"`
		HashKey       string   `json:"hash_key"`
		LogFile       string   `json:"log_file"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BackupDir string `json:"backup_dir"`
			MirrorDir string `json:"mirror_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Endpoint     string `json:"endpoint"`
			Region       string `json:"region"`
			Bucket       string `json:"bucket"`
			AccessKey    string `json:"access_key"`
			SecretKey    string `json:"secret_key"`
			UsePathStyle bool   `json:"use_path_style"`
			Mirror       bool   `json:"mirror"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		Timeout          Duration `json:"timeout"`
		RestoreTimeout   Duration `json:"restore_timeout"`
		MaxBackups       int      `json:"max_backups"`
		MaxArchiveSize   int64    `json:"max_archive_size"`
		BackupPassphrase string   `json:"backup_passphrase"`
	} `json:"sync,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		InactivityDelay  Duration `json:"inactivity_delay"`
		AutoSyncInterval Duration `json:"auto_sync_interval"`
		AutoSyncBatch    int      `json:"auto_sync_batch"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Token:         jsonCfg.App.Token,
			HashKey:       jsonCfg.App.HashKey,
			LogFile:       jsonCfg.App.LogFile,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BackupDir: jsonCfg.Storage.Files.BackupDir,
				MirrorDir: jsonCfg.Storage.Files.MirrorDir,
			},
			S3: S3{
				Endpoint:     jsonCfg.Storage.S3.Endpoint,
				Region:       jsonCfg.Storage.S3.Region,
				Bucket:       jsonCfg.Storage.S3.Bucket,
				AccessKey:    jsonCfg.Storage.S3.AccessKey,
				SecretKey:    jsonCfg.Storage.S3.SecretKey,
				UsePathStyle: jsonCfg.Storage.S3.UsePathStyle,
				Mirror:       jsonCfg.Storage.S3.Mirror,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			Timeout:          time.Duration(jsonCfg.Sync.Timeout),
			RestoreTimeout:   time.Duration(jsonCfg.Sync.RestoreTimeout),
			MaxBackups:       jsonCfg.Sync.MaxBackups,
			MaxArchiveSize:   jsonCfg.Sync.MaxArchiveSize,
			BackupPassphrase: jsonCfg.Sync.BackupPassphrase,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:     time.Duration(jsonCfg.Workers.SyncInterval),
			InactivityDelay:  time.Duration(jsonCfg.Workers.InactivityDelay),
			AutoSyncInterval: time.Duration(jsonCfg.Workers.AutoSyncInterval),
			AutoSyncBatch:    jsonCfg.Workers.AutoSyncBatch,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
