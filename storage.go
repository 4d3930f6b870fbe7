package gwaspower

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// splitGoogleStoragePath returns the bucket and object of a gs://bucket/object
// path. ok is false for local paths.
func splitGoogleStoragePath(path string) (bucket, object string, ok bool, err error) {
	if !strings.HasPrefix(path, "gs://") {
		return "", "", false, nil
	}

	parts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", true, fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d parts: %v", len(parts), parts)
	}

	return parts[0], parts[1], true, nil
}

// MaybeOpenFromGoogleStorage opens path for reading. gs:// paths are read
// through client, which must then be non-nil; anything else is a local file.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	bucket, object, remote, err := splitGoogleStoragePath(path)
	if err != nil {
		return nil, err
	}

	if !remote {
		local, err := ExpandHome(path)
		if err != nil {
			return nil, err
		}
		return os.Open(local)
	}

	if client == nil {
		return nil, fmt.Errorf("%s: a Google Storage client is required", path)
	}

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return r, nil
}

// CreateOutput opens path for writing, truncating any existing local file. For
// gs:// paths the object is only committed when Close returns nil.
func CreateOutput(ctx context.Context, path string, client *storage.Client) (io.WriteCloser, error) {
	bucket, object, remote, err := splitGoogleStoragePath(path)
	if err != nil {
		return nil, err
	}

	if !remote {
		local, err := ExpandHome(path)
		if err != nil {
			return nil, err
		}
		return os.Create(local)
	}

	if client == nil {
		return nil, fmt.Errorf("%s: a Google Storage client is required", path)
	}

	return client.Bucket(bucket).Object(object).NewWriter(ctx), nil
}

// IsGoogleStoragePath reports whether path names a gs:// object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}
