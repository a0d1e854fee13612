package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Buckets known to the application.
const (
	BucketGames    = "game"
	BucketConsoles = "console-images"
)

// ErrUnknownBucket is returned for uploads to a bucket that is not configured.
var ErrUnknownBucket = errors.New("unknown bucket")

// Store uploads files and hands out their public URLs.
type Store interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader) (string, error)
	PublicURL(bucket, objectPath string) string
}

// FSStore keeps objects on an afero filesystem, one directory per bucket.
type FSStore struct {
	fs      afero.Fs
	baseURL string
	buckets map[string]string // bucket -> key prefix
	now     func() time.Time
}

// NewFSStore serves objects under baseURL + "/storage/".
func NewFSStore(fs afero.Fs, baseURL string) *FSStore {
	return &FSStore{
		fs:      fs,
		baseURL: strings.TrimRight(baseURL, "/"),
		buckets: map[string]string{
			BucketGames:    "game-covers/",
			BucketConsoles: "",
		},
		now: time.Now,
	}
}

// NewOSStore stores objects below dir on the local disk.
func NewOSStore(dir, baseURL string) (*FSStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return NewFSStore(afero.NewBasePathFs(osFs, dir), baseURL), nil
}

// ObjectName builds a timestamp-based name keeping the original extension.
func ObjectName(now time.Time, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d%s", now.UnixNano(), ext)
}

// Upload writes r under a fresh timestamp-based name and returns the
// object path inside the bucket.
func (s *FSStore) Upload(ctx context.Context, bucket, name string, r io.Reader) (string, error) {
	prefix, ok := s.buckets[bucket]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	objectPath := prefix + ObjectName(s.now(), name)
	full := path.Join("/", bucket, objectPath)
	if err := s.fs.MkdirAll(path.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	f, err := s.fs.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(full)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close object: %w", err)
	}
	return objectPath, nil
}

func (s *FSStore) PublicURL(bucket, objectPath string) string {
	return s.baseURL + "/storage/" + bucket + "/" + objectPath
}

// FileSystem exposes the stored objects read-only for static serving.
func (s *FSStore) FileSystem() http.FileSystem {
	return afero.NewHttpFs(afero.NewReadOnlyFs(s.fs)).Dir("/")
}
