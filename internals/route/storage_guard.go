package routes

import (
	"context"
	"fmt"
	"io"
)

// unconfiguredStorage stands in when OSS env vars are missing: saves fail
// loudly, deletes stay best-effort no-ops so record cleanup still works.
type unconfiguredStorage struct{}

func (unconfiguredStorage) Save(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	return "", fmt.Errorf("object storage not configured")
}

func (unconfiguredStorage) Delete(ctx context.Context, url string) error {
	return nil
}
