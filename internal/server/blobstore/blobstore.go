// Package blobstore stores encrypted file payloads by key. Missing objects
// are reported as common.ErrorNotFound.
package blobstore

import (
	"context"
	"fmt"
)

type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Key is the blob key of a file: users/{owner}/{file}.
func Key(ownerID, fileID string) string {
	return fmt.Sprintf("users/%s/%s", ownerID, fileID)
}
