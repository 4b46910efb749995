// Package storage handles blob uploads for contract and document
// attachments. Keys follow <prefix>/<unix-ms>_<original filename>; the
// public download URL is derived at upload time and persisted in the
// owning entity's file list.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"fornecedores/pkg/types"

	"golang.org/x/sync/errgroup"
)

// Prefixes for the two attachment-bearing collections.
const (
	PrefixContracts = "contracts"
	PrefixDocuments = "documents"
)

// Upload is one pending file from a multipart form.
type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Provider abstracts the blob store so handlers and tests do not carry
// an S3 client.
type Provider interface {
	UploadAll(ctx context.Context, prefix string, files []Upload) ([]types.FileRef, error)
	Delete(ctx context.Context, fileURL string) error
}

// ObjectKey builds the storage key for one upload at a given moment.
func ObjectKey(prefix, fileName string, at time.Time) string {
	return fmt.Sprintf("%s/%d_%s", prefix, at.UnixMilli(), fileName)
}

// KeyFromURL recovers the object key from a persisted public URL.
func KeyFromURL(fileURL string) (string, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("parse file url: %w", err)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", fmt.Errorf("file url %q carries no object key", fileURL)
	}
	return key, nil
}

// MergeFiles reconciles an entity's attachment list during an update:
// existing files marked for deletion drop out, survivors keep their
// position, and freshly uploaded files append after them.
func MergeFiles(existing []types.FileRef, deleteURLs []string, uploaded []types.FileRef) []types.FileRef {
	drop := make(map[string]struct{}, len(deleteURLs))
	for _, u := range deleteURLs {
		drop[u] = struct{}{}
	}

	merged := make([]types.FileRef, 0, len(existing)+len(uploaded))
	for _, file := range existing {
		if _, gone := drop[file.URL]; gone {
			continue
		}
		merged = append(merged, file)
	}

	return append(merged, uploaded...)
}

// uploadAll runs the fan-out shared by every Provider implementation:
// all uploads run concurrently and the whole batch fails if any one
// upload fails.
func uploadAll(ctx context.Context, prefix string, files []Upload, put func(ctx context.Context, key string, file Upload) (string, error)) ([]types.FileRef, error) {
	refs := make([]types.FileRef, len(files))

	g, groupCtx := errgroup.WithContext(ctx)
	now := time.Now()

	for i, file := range files {
		// The stamp steps per file so two same-named files in one
		// submission never share an object key.
		at := now.Add(time.Duration(i) * time.Millisecond)
		g.Go(func() error {
			key := ObjectKey(prefix, file.Name, at)
			publicURL, err := put(groupCtx, key, file)
			if err != nil {
				return fmt.Errorf("upload %s: %w", file.Name, err)
			}
			refs[i] = types.FileRef{Name: file.Name, URL: publicURL}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}
