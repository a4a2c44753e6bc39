// Package storage abstracts the photo hosting service behind a single
// Upload call. Providers return a publicly reachable URL or a
// descriptive error; no retry or idempotency is guaranteed.
package storage

import "context"

type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
