package file

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a file node does not exist.
var ErrNotFound = errors.New("file not found")

// Repository is the data-access contract for file nodes. Implementations
// must be safe for concurrent use and must list in stable insertion order.
type Repository interface {
	// Insert stores a new node and returns it with id and timestamp set.
	Insert(ctx context.Context, node *FileNode) (*FileNode, error)
	// GetByID fetches a node by id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*FileNode, error)
	// ListByOwnerAndParent returns the owner's nodes under parent in
	// insertion order, applying offset and limit. An out-of-range offset
	// yields an empty slice.
	ListByOwnerAndParent(ctx context.Context, ownerID string, parent ParentRef, limit, offset int) ([]*FileNode, error)
	// UpdateVisibility sets is_public and returns the updated node, or
	// ErrNotFound.
	UpdateVisibility(ctx context.Context, id string, isPublic bool) (*FileNode, error)
	// Count returns the total number of nodes.
	Count(ctx context.Context) (int64, error)
}
