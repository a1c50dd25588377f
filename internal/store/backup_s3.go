// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/models"
)

// s3API is the subset of *s3.Client used by [s3Store].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Swappable for tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// s3Store keeps archives under backups/<user>/<name> and mirror sheets under
// mirror/<user>/<table>.csv in one bucket. Works with AWS and S3-compatible
// servers such as MinIO (set an endpoint and path-style addressing).
type s3Store struct {
	client s3API
	bucket string
}

// S3Store is an S3-backed [BackupStore] and [SheetSink].
type S3Store interface {
	BackupStore
	SheetSink
}

func NewS3Store(ctx context.Context, cfg config.S3) (S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Store(client, cfg.Bucket), nil
}

func newS3Store(client s3API, bucket string) *s3Store {
	return &s3Store{client: client, bucket: bucket}
}

func (s *s3Store) Upload(ctx context.Context, userID, name string, data []byte) (models.FileRef, error) {
	ref := models.FileRef{Key: backupKey(userID, name), UserID: userID, Name: name, Size: int64(len(data))}
	if err := checkRef(ref); err != nil {
		return models.FileRef{}, err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(ref.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(ref.Size),
		ContentType:   aws.String("application/gzip"),
	})
	if err != nil {
		return models.FileRef{}, fmt.Errorf("%w: put %s: %w", ErrRemoteUnavailable, ref.Key, err)
	}

	ref.CreatedAt = models.NormalizeTime(timeNow())
	return ref, nil
}

func (s *s3Store) List(ctx context.Context, userID string) ([]models.FileRef, error) {
	if err := validateSegment("user", userID); err != nil {
		return nil, err
	}

	prefix := backupUserPrefix(userID)
	refs := make([]models.FileRef, 0, 16)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %w", ErrRemoteUnavailable, prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := strings.TrimPrefix(key, prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			ref := models.FileRef{
				Key:    key,
				UserID: userID,
				Name:   path.Base(key),
				Size:   aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				ref.CreatedAt = models.NormalizeTime(*obj.LastModified)
			}
			refs = append(refs, ref)
		}
	}
	sortNewestFirst(refs)

	return refs, nil
}

func (s *s3Store) Fetch(ctx context.Context, ref models.FileRef) ([]byte, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}
	key := backupKey(ref.UserID, ref.Name)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrBackupNotFound, ref.Name)
		}
		return nil, fmt.Errorf("%w: get %s: %w", ErrRemoteUnavailable, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrRemoteUnavailable, key, err)
	}
	return data, nil
}

func (s *s3Store) Delete(ctx context.Context, ref models.FileRef) error {
	if err := checkRef(ref); err != nil {
		return err
	}
	key := backupKey(ref.UserID, ref.Name)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("%w: delete %s: %w", ErrRemoteUnavailable, key, err)
	}
	return nil
}

func (s *s3Store) PutSheet(ctx context.Context, userID, sheet string, data []byte) error {
	if err := validateSegment("user", userID); err != nil {
		return err
	}
	if err := validateSegment("sheet", sheet); err != nil {
		return err
	}
	key := sheetKey(userID, sheet)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrRemoteUnavailable, key, err)
	}
	return nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
