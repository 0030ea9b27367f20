// Package session implements the ephemeral token store that gates every
// authenticated operation. Tokens are opaque, collision-resistant strings
// mapped to an account id with a fixed time-to-live; multiple live tokens
// per account are allowed.
package session

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is the fixed lifetime of an issued token.
const DefaultTTL = 24 * time.Hour

// ErrNoSession is returned by Resolve when the token was never issued, was
// revoked, or has expired. A backend failure is reported as a distinct
// wrapped error, never as ErrNoSession.
var ErrNoSession = errors.New("session not found")

// Store is the contract for session persistence. Implementations must be
// safe for concurrent use.
type Store interface {
	// Issue generates a fresh opaque token for the account and stores the
	// mapping with the store's TTL.
	Issue(ctx context.Context, accountID string) (string, error)
	// Resolve returns the account id for the token, or ErrNoSession.
	// Malformed tokens resolve to ErrNoSession, never to a panic or a
	// backend error.
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke deletes the token. Revoking an absent token is a no-op.
	Revoke(ctx context.Context, token string) error
	// Ping reports backend liveness.
	Ping(ctx context.Context) error
}
