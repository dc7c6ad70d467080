// Package minio archives downloaded court order PDFs in S3-compatible
// object storage. Archival keeps a durable copy of documents that court
// portals routinely take offline after a few months.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// Archive stores and retrieves order documents. The nop implementation is
// used when no archive endpoint is configured.
type Archive interface {
	// Store saves the artifact's bytes under a key derived from its CNR
	// and order number, returning the object key.
	Store(ctx context.Context, artifact *court.OrderArtifact) (string, error)

	// Fetch returns the archived bytes for key, or CodeNotFound.
	Fetch(ctx context.Context, key string) ([]byte, error)

	// PresignedURL returns a time-limited direct download URL for key.
	PresignedURL(ctx context.Context, key string) (string, error)
}

type objectArchive struct {
	client        *minio.Client
	bucket        string
	presignExpiry time.Duration
	logger        logging.Logger
}

// NewArchive connects to the object store described by cfg and ensures
// the configured bucket exists.
func NewArchive(ctx context.Context, cfg config.ArchiveConfig, logger logging.Logger) (Archive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: client init failed")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: bucket check failed")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: bucket create failed")
		}
	}

	return &objectArchive{
		client:        client,
		bucket:        cfg.Bucket,
		presignExpiry: cfg.PresignExpiry,
		logger:        logger.Named("archive"),
	}, nil
}

// ObjectKey derives the canonical storage key for an order artifact.
func ObjectKey(cnr string, orderNumber int) string {
	return fmt.Sprintf("orders/%s/%d.pdf", cnr, orderNumber)
}

func (a *objectArchive) Store(ctx context.Context, artifact *court.OrderArtifact) (string, error) {
	key := ObjectKey(artifact.CNR, artifact.OrderNumber)
	contentType := artifact.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	_, err := a.client.PutObject(ctx, a.bucket, key,
		bytes.NewReader(artifact.Data), int64(len(artifact.Data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: put failed")
	}

	a.logger.Debug("order archived",
		logging.String("key", key),
		logging.Int("bytes", len(artifact.Data)))
	return key, nil
}

func (a *objectArchive) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: get failed")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil, errors.New(errors.CodeNotFound, "archive: object not found")
		}
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: read failed")
	}
	return data, nil
}

func (a *objectArchive) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, a.presignExpiry, url.Values{})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstreamUnavailable, "archive: presign failed")
	}
	return u.String(), nil
}

type nopArchive struct{}

func (nopArchive) Store(_ context.Context, _ *court.OrderArtifact) (string, error) { return "", nil }
func (nopArchive) Fetch(_ context.Context, _ string) ([]byte, error) {
	return nil, errors.New(errors.CodeNotFound, "archive disabled")
}
func (nopArchive) PresignedURL(_ context.Context, _ string) (string, error) { return "", nil }

// NewNopArchive returns an Archive that stores nothing; downloads pass
// straight through to the caller.
func NewNopArchive() Archive { return nopArchive{} }
