// Package remote provides clients for the authoritative per-user
// document store. The store holds one row per user identity: the user
// identifier as primary key, the document as a JSON payload, and a
// last-updated timestamp. Access control is enforced by the store
// itself, not by these clients.
package remote

import (
	"context"
	"errors"

	"github.com/strata-app/strata/types"
)

// ErrNotFound is returned by Load when no document exists for the user.
// This is the expected new-user branch, not a failure: callers seed the
// remote store with their local document when they see it.
var ErrNotFound = errors.New("remote document not found")

// Store is the save/load contract against a per-user remote document.
type Store interface {
	// Load fetches the document for userID. Returns ErrNotFound when
	// the user has no remote document yet.
	Load(ctx context.Context, userID string) (types.Document, error)

	// Save upserts the full document for userID with a fresh timestamp.
	Save(ctx context.Context, userID string, doc types.Document) error
}
