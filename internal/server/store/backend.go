// Package store persists whole JSON documents by name. A Store wraps one
// document of one type; a Backend moves the raw bytes.
package store

import "context"

// Backend reads and writes raw documents. Read returns common.ErrorNotFound
// when the document has never been written.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Backend kinds accepted by Open.
const (
	KindFile     = "file"
	KindPostgres = "postgres"
	KindS3       = "s3"
	KindRedis    = "redis"
)
