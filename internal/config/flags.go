// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-backup-dir local backup directory
//	-mirror-dir local mirror directory
//	-s3-bucket, -s3-endpoint, -s3-region object store settings
//	-sync-timeout sync deadline
//	-max-backups archives kept per user
//	-backup-passphrase archive sealing passphrase
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-expense-sync", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer, hashKey string
	var requestTimeout, syncTimeout time.Duration
	var backupDir, mirrorDir string
	var s3Bucket, s3Endpoint, s3Region string
	var maxBackups int
	var backupPassphrase string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&backupDir, "backup-dir", "", "Local backup directory")
	fs.StringVar(&mirrorDir, "mirror-dir", "", "Local mirror directory")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for backups")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint")
	fs.StringVar(&s3Region, "s3-region", "", "S3 region")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Sync deadline (e.g., 2m)")
	fs.IntVar(&maxBackups, "max-backups", 0, "Archives kept per user")
	fs.StringVar(&backupPassphrase, "backup-passphrase", "", "Archive sealing passphrase")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			HashKey:      hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BackupDir: backupDir,
				MirrorDir: mirrorDir,
			},
			S3: S3{
				Bucket:   s3Bucket,
				Endpoint: s3Endpoint,
				Region:   s3Region,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Timeout:          syncTimeout,
			MaxBackups:       maxBackups,
			BackupPassphrase: backupPassphrase,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface; any other host must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
