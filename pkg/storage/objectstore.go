// Package storage implements the remote blob-store boundary on a NATS
// JetStream object store.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/retry"
)

// invalidBucketChars collapses characters JetStream bucket names reject.
var invalidBucketChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ObjectStore uploads report artifacts into per-container JetStream object
// buckets. Safe for concurrent use; buckets are created on first write.
type ObjectStore struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *slog.Logger
}

// Connect dials NATS with bounded retries and prepares the JetStream
// context. Close the returned store when done.
func Connect(ctx context.Context, url string, logger *slog.Logger) (*ObjectStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var nc *nats.Conn
	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		var err error
		nc, err = nats.Connect(url, nats.Name("report-engine"))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream context: %w", err)
	}
	return &ObjectStore{nc: nc, js: js, logger: logger}, nil
}

// Upload writes blob under container/name and returns its durable URL.
// Single-shot: retry policy belongs to the caller.
func (s *ObjectStore) Upload(ctx context.Context, container, name string, blob []byte) (string, error) {
	bucket := BucketName(container)
	os, err := s.js.CreateOrUpdateObjectStore(ctx, jetstream.ObjectStoreConfig{
		Bucket:      bucket,
		Description: "report artifacts",
	})
	if err != nil {
		return "", fmt.Errorf("object store %q: %w", bucket, err)
	}

	if _, err := os.PutBytes(ctx, name, blob); err != nil {
		return "", fmt.Errorf("put %s/%s: %w", bucket, name, err)
	}

	s.logger.Debug("artifact uploaded", "bucket", bucket, "name", name, "bytes", len(blob))
	return "nats://" + bucket + "/" + name, nil
}

// Close drains the underlying connection.
func (s *ObjectStore) Close() {
	s.nc.Close()
}

// Conn exposes the underlying connection for collaborators that share it
// (the status publisher).
func (s *ObjectStore) Conn() *nats.Conn {
	return s.nc
}

// BucketName maps an arbitrary container id onto a valid JetStream bucket
// name.
func BucketName(container string) string {
	name := invalidBucketChars.ReplaceAllString(container, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "reports"
	}
	return name
}
