package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository on a pgx connection pool. The
// root parent is stored as NULL; insertion order is created_at with id as a
// tie-breaker.
type PostgresRepository struct {
	db *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository with the given connection pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new node and returns the created record.
func (r *PostgresRepository) Insert(ctx context.Context, node *FileNode) (*FileNode, error) {
	created := &FileNode{}
	var parentID, storageKey *string
	err := r.db.QueryRow(ctx,
		`INSERT INTO files (owner_id, name, kind, is_public, parent_id, storage_key)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, owner_id, name, kind, is_public, parent_id, storage_key, created_at`,
		node.OwnerID, node.Name, string(node.Kind), node.IsPublic,
		nullable(node.Parent.FolderID()), nullable(node.StorageKey),
	).Scan(&created.ID, &created.OwnerID, &created.Name, &created.Kind,
		&created.IsPublic, &parentID, &storageKey, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}
	created.Parent = parentRef(parentID)
	created.StorageKey = deref(storageKey)
	return created, nil
}

// GetByID fetches a node by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*FileNode, error) {
	node := &FileNode{}
	var parentID, storageKey *string
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, name, kind, is_public, parent_id, storage_key, created_at
		 FROM files WHERE id = $1`,
		id,
	).Scan(&node.ID, &node.OwnerID, &node.Name, &node.Kind,
		&node.IsPublic, &parentID, &storageKey, &node.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get file by id: %w", err)
	}
	node.Parent = parentRef(parentID)
	node.StorageKey = deref(storageKey)
	return node, nil
}

// ListByOwnerAndParent returns a page of the owner's nodes under parent.
func (r *PostgresRepository) ListByOwnerAndParent(ctx context.Context, ownerID string, parent ParentRef, limit, offset int) ([]*FileNode, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, owner_id, name, kind, is_public, parent_id, storage_key, created_at
		 FROM files
		 WHERE owner_id = $1 AND parent_id IS NOT DISTINCT FROM $2
		 ORDER BY created_at, id
		 LIMIT $3 OFFSET $4`,
		ownerID, nullable(parent.FolderID()), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	nodes := []*FileNode{}
	for rows.Next() {
		node := &FileNode{}
		var parentID, storageKey *string
		if err := rows.Scan(&node.ID, &node.OwnerID, &node.Name, &node.Kind,
			&node.IsPublic, &parentID, &storageKey, &node.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		node.Parent = parentRef(parentID)
		node.StorageKey = deref(storageKey)
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file rows: %w", err)
	}
	return nodes, nil
}

// UpdateVisibility sets is_public and returns the updated node.
func (r *PostgresRepository) UpdateVisibility(ctx context.Context, id string, isPublic bool) (*FileNode, error) {
	node := &FileNode{}
	var parentID, storageKey *string
	err := r.db.QueryRow(ctx,
		`UPDATE files SET is_public = $2 WHERE id = $1
		 RETURNING id, owner_id, name, kind, is_public, parent_id, storage_key, created_at`,
		id, isPublic,
	).Scan(&node.ID, &node.OwnerID, &node.Name, &node.Kind,
		&node.IsPublic, &parentID, &storageKey, &node.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update file visibility: %w", err)
	}
	node.Parent = parentRef(parentID)
	node.StorageKey = deref(storageKey)
	return node, nil
}

// Count returns the total number of file nodes.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return n, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parentRef(id *string) ParentRef {
	if id == nil {
		return RootParent()
	}
	return FolderParent(*id)
}
