// Package store defines the label store port consumed by the reconciliation
// engine, together with a GitHub adapter and an in-memory implementation.
package store

import (
	"context"

	"github.com/klauern/labelsync/internal/label"
)

// CreateOptions carries the fields for a label creation.
type CreateOptions struct {
	Name        string
	Color       string
	Description string
}

// UpdateOptions carries the fields for a label update. A non-empty NewName
// renames the label in the same call; renames are never split into a
// rename-then-update pair.
type UpdateOptions struct {
	NewName     string
	Color       string
	Description string
}

// Store is the CRUD contract for a remote label store. Implementations own
// their transport, timeout, and retry behavior; the engine only sees the
// results.
//
// Create and Update may return (nil, nil) to signal that a dry-run
// implementation accepted the mutation without performing it. Get returns
// (nil, nil) only for "not found"; transport failures are errors.
type Store interface {
	List(ctx context.Context) ([]label.RemoteLabel, error)
	Get(ctx context.Context, name string) (*label.RemoteLabel, error)
	Create(ctx context.Context, opts CreateOptions) (*label.RemoteLabel, error)
	Update(ctx context.Context, name string, opts UpdateOptions) (*label.RemoteLabel, error)
	Delete(ctx context.Context, name string) error
}
