// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-expense-sync/internal/crypto"
	"github.com/MKhiriev/go-expense-sync/models"
)

// DefaultMaxSize bounds both the archive and its decompressed content.
const DefaultMaxSize int64 = 64 << 20

// Codec encodes and decodes snapshot archives.
type Codec struct {
	sealer  crypto.Sealer
	maxSize int64
}

type Option func(*Codec)

// WithSealer seals encoded archives and opens sealed ones on decode.
func WithSealer(s crypto.Sealer) Option {
	return func(c *Codec) { c.sealer = s }
}

// WithMaxSize overrides [DefaultMaxSize]. Non-positive values are ignored.
func WithMaxSize(n int64) Option {
	return func(c *Codec) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

func NewCodec(opts ...Option) *Codec {
	c := &Codec{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode writes s with the default codec.
func Encode(s models.Snapshot) ([]byte, error) {
	return NewCodec().Encode(s)
}

// Decode reads data with the default codec.
func Decode(data []byte) (models.Snapshot, error) {
	return NewCodec().Decode(data)
}

// Sealed reports whether the codec seals the archives it encodes.
func (c *Codec) Sealed() bool {
	return c.sealer != nil
}

// Encode serializes s. The snapshot must satisfy [models.Dataset.Validate]
// for its own user.
func (c *Codec) Encode(s models.Snapshot) ([]byte, error) {
	if err := s.Dataset.Validate(s.UserID); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	manifest := Manifest{
		Format:     Format,
		Version:    models.SnapshotFormatVersion,
		UserID:     s.UserID,
		ExportedAt: models.NormalizeTime(s.ExportedAt),
		Tables:     make([]TableEntry, 0, len(models.DependencyOrder)),
	}

	docs := make([][]byte, 0, len(models.DependencyOrder))
	for _, t := range models.DependencyOrder {
		doc, err := json.Marshal(s.Dataset.Records(t))
		if err != nil {
			return nil, fmt.Errorf("marshal table %s: %w", t, err)
		}
		sum := sha256.Sum256(doc)
		manifest.Tables = append(manifest.Tables, TableEntry{
			Name:   t,
			Rows:   s.Dataset.Count(t),
			SHA256: hex.EncodeToString(sum[:]),
		})
		docs = append(docs, doc)
	}

	manifestDoc, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)

	if err = writeEntry(tw, manifestEntry, manifestDoc, manifest); err != nil {
		return nil, err
	}
	for i, t := range models.DependencyOrder {
		if err = writeEntry(tw, tableEntryName(t), docs[i], manifest); err != nil {
			return nil, err
		}
	}
	if err = tw.Close(); err != nil {
		return nil, fmt.Errorf("close tar: %w", err)
	}
	if err = gzw.Close(); err != nil {
		return nil, fmt.Errorf("close gzip: %w", err)
	}

	if c.sealer == nil {
		return buf.Bytes(), nil
	}
	sealed, err := c.sealer.Seal(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("seal archive: %w", err)
	}
	return sealed, nil
}

func writeEntry(tw *tar.Writer, name string, data []byte, m Manifest) error {
	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Mode:     0o644,
		Size:     int64(len(data)),
		ModTime:  m.ExportedAt,
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header %s: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Decode parses an archive produced by [Codec.Encode].
//
// Structural violations are reported as [ErrMalformedSnapshot], archives of
// another format version as [ErrUnsupportedFormatVersion], sealed archives
// without a configured sealer as [ErrSealedArchive].
func (c *Codec) Decode(data []byte) (models.Snapshot, error) {
	if int64(len(data)) > c.maxSize {
		return models.Snapshot{}, fmt.Errorf("%w: archive exceeds %d bytes", ErrMalformedSnapshot, c.maxSize)
	}

	if crypto.IsSealed(data) {
		if c.sealer == nil {
			return models.Snapshot{}, ErrSealedArchive
		}
		opened, err := c.sealer.Open(data)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}
		data = opened
	}

	manifest, docs, err := c.readEntries(data)
	if err != nil {
		return models.Snapshot{}, err
	}

	if manifest.Format != Format {
		return models.Snapshot{}, fmt.Errorf("%w: unknown format %q", ErrMalformedSnapshot, manifest.Format)
	}
	if manifest.Version != models.SnapshotFormatVersion {
		return models.Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedFormatVersion, manifest.Version)
	}
	if manifest.UserID == "" {
		return models.Snapshot{}, fmt.Errorf("%w: manifest has no user id", ErrMalformedSnapshot)
	}

	dataset, err := decodeTables(manifest, docs)
	if err != nil {
		return models.Snapshot{}, err
	}
	if err = dataset.Validate(manifest.UserID); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	return models.Snapshot{
		FormatVersion: manifest.Version,
		UserID:        manifest.UserID,
		ExportedAt:    models.NormalizeTime(manifest.ExportedAt),
		Dataset:       dataset,
	}, nil
}

// readEntries unpacks the container into the manifest and the raw table
// documents keyed by table name.
func (c *Codec) readEntries(data []byte) (*Manifest, map[string][]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	defer gzr.Close()

	// one extra byte tells "exactly at the limit" from "over it"
	limited := &io.LimitedReader{R: gzr, N: c.maxSize + 1}
	tr := tar.NewReader(limited)

	var manifest *Manifest
	docs := make(map[string][]byte, len(models.DependencyOrder))

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, c.readError(limited, err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}

		body, err := io.ReadAll(tr)
		if err != nil {
			return nil, nil, c.readError(limited, err)
		}

		if header.Name == manifestEntry {
			if manifest != nil {
				return nil, nil, fmt.Errorf("%w: duplicate manifest", ErrMalformedSnapshot)
			}
			manifest = &Manifest{}
			if err = json.Unmarshal(body, manifest); err != nil {
				return nil, nil, fmt.Errorf("%w: manifest: %w", ErrMalformedSnapshot, err)
			}
			continue
		}

		name, ok := tableFromEntryName(header.Name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unexpected entry %q", ErrMalformedSnapshot, header.Name)
		}
		if _, dup := docs[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate table document %q", ErrMalformedSnapshot, name)
		}
		docs[name] = body
	}

	if limited.N <= 0 {
		return nil, nil, fmt.Errorf("%w: content exceeds %d bytes", ErrMalformedSnapshot, c.maxSize)
	}
	if manifest == nil {
		return nil, nil, fmt.Errorf("%w: missing manifest", ErrMalformedSnapshot)
	}
	return manifest, docs, nil
}

func (c *Codec) readError(limited *io.LimitedReader, err error) error {
	if limited.N <= 0 {
		return fmt.Errorf("%w: content exceeds %d bytes", ErrMalformedSnapshot, c.maxSize)
	}
	return fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
}

func decodeTables(m *Manifest, docs map[string][]byte) (models.Dataset, error) {
	var dataset models.Dataset
	listed := make(map[models.Table]struct{}, len(m.Tables))

	for _, entry := range m.Tables {
		table, err := models.ParseTable(string(entry.Name))
		if err != nil {
			return models.Dataset{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}
		if _, dup := listed[table]; dup {
			return models.Dataset{}, fmt.Errorf("%w: table %s listed twice", ErrMalformedSnapshot, table)
		}
		listed[table] = struct{}{}

		doc, ok := docs[string(table)]
		if !ok {
			return models.Dataset{}, fmt.Errorf("%w: missing document for table %s", ErrMalformedSnapshot, table)
		}
		sum := sha256.Sum256(doc)
		if hex.EncodeToString(sum[:]) != entry.SHA256 {
			return models.Dataset{}, fmt.Errorf("%w: checksum mismatch for table %s", ErrMalformedSnapshot, table)
		}

		var rows []json.RawMessage
		if err = json.Unmarshal(doc, &rows); err != nil {
			return models.Dataset{}, fmt.Errorf("%w: table %s: %w", ErrMalformedSnapshot, table, err)
		}
		if len(rows) != entry.Rows {
			return models.Dataset{}, fmt.Errorf("%w: table %s has %d rows, manifest says %d",
				ErrMalformedSnapshot, table, len(rows), entry.Rows)
		}

		for i, raw := range rows {
			record, err := models.DecodeRecord(table, raw)
			if err != nil {
				return models.Dataset{}, fmt.Errorf("%w: table %s row %d: %w", ErrMalformedSnapshot, table, i, err)
			}
			dataset.Append(record)
		}
	}

	for _, table := range models.DependencyOrder {
		if _, ok := listed[table]; !ok {
			return models.Dataset{}, fmt.Errorf("%w: table %s missing from manifest", ErrMalformedSnapshot, table)
		}
	}
	for name := range docs {
		if _, ok := listed[models.Table(name)]; !ok {
			return models.Dataset{}, fmt.Errorf("%w: document %q not listed in manifest", ErrMalformedSnapshot, name)
		}
	}

	return dataset, nil
}
