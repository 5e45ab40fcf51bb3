package tokenstore

import (
	"context"
	"errors"
)

// Store is the single durable slot for the bearer credential, so a restarted
// process can resume its session. Consumers define this interface, not the
// backing implementation.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

var ErrNotFound = errors.New("no stored token")
