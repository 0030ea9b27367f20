package file

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-process Repository preserving insertion order.
// Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*FileNode
	order []string
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*FileNode)}
}

func (r *MemoryRepository) Insert(_ context.Context, node *FileNode) (*FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *node
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	copied := stored
	return &copied, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*FileNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *node
	return &copied, nil
}

func (r *MemoryRepository) ListByOwnerAndParent(_ context.Context, ownerID string, parent ParentRef, limit, offset int) ([]*FileNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*FileNode{}
	for _, id := range r.order {
		node := r.byID[id]
		if node.OwnerID == ownerID && node.Parent == parent {
			matched = append(matched, node)
		}
	}

	if offset >= len(matched) || offset < 0 {
		return []*FileNode{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]*FileNode, 0, end-offset)
	for _, node := range matched[offset:end] {
		copied := *node
		page = append(page, &copied)
	}
	return page, nil
}

func (r *MemoryRepository) UpdateVisibility(_ context.Context, id string, isPublic bool) (*FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	node, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	node.IsPublic = isPublic
	copied := *node
	return &copied, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
