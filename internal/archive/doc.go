// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive converts a [models.Snapshot] to and from its portable
// backup form: a gzip-compressed tar container holding a manifest and one
// JSON document per entity table.
//
//	manifest.json
//	tables/settings.json
//	tables/vehicles.json
//	tables/financing.json
//	tables/insurance.json
//	tables/expenses.json
//
// The manifest lists every table with its row count and the SHA-256 of its
// document. Decoding never touches storage; it rejects archives of unknown
// format versions and archives whose content breaks the dataset contract
// (dangling foreign keys, foreign owners, duplicate ids).
//
// Archives may be sealed with a passphrase through [crypto.Sealer].
package archive
