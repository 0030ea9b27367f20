package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/filebox/service/internal/apperr"
	"github.com/filebox/service/internal/queue"
	"github.com/filebox/service/internal/storage"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 20

// Service enforces the metadata invariants and composes the content store
// and the job dispatcher around the repository.
type Service struct {
	repo     Repository
	contents storage.Storage
	jobs     queue.Dispatcher
}

// NewService creates a new file Service.
func NewService(repo Repository, contents storage.Storage, jobs queue.Dispatcher) *Service {
	return &Service{repo: repo, contents: contents, jobs: jobs}
}

// CreateParams describes a node to create. Data holds the decoded content
// bytes for file/image kinds and is ignored for folders.
type CreateParams struct {
	OwnerID  string
	Name     string
	Kind     Kind
	IsPublic bool
	Parent   ParentRef
	Data     []byte
}

// Create validates the request, writes content (durably, before any
// metadata insert), stores the node, and for images dispatches a thumbnail
// job. A failed dispatch never fails the create: the record and its content
// are already committed, so the outage is only logged.
//
// If the metadata insert fails after the content write, the blob is
// orphaned; that is the accepted race of the two-step create. The order is
// never inverted: metadata never references an unconfirmed write.
func (s *Service) Create(ctx context.Context, p CreateParams) (*FileNode, error) {
	if p.Name == "" {
		return nil, apperr.New(apperr.KindValidationFailed, "Missing name")
	}
	if _, ok := ParseKind(string(p.Kind)); !ok {
		return nil, apperr.New(apperr.KindValidationFailed, "Missing type")
	}
	if p.Kind.HasContent() && len(p.Data) == 0 {
		return nil, apperr.New(apperr.KindValidationFailed, "Missing data")
	}

	if !p.Parent.IsRoot() {
		parent, err := s.repo.GetByID(ctx, p.Parent.FolderID())
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.New(apperr.KindInvalidParent, "Parent not found")
		}
		if err != nil {
			return nil, fmt.Errorf("fetch parent: %w", err)
		}
		if parent.Kind != KindFolder {
			return nil, apperr.New(apperr.KindInvalidParent, "Parent is not a folder")
		}
	}

	node := &FileNode{
		OwnerID:  p.OwnerID,
		Name:     p.Name,
		Kind:     p.Kind,
		IsPublic: p.IsPublic,
		Parent:   p.Parent,
	}

	if p.Kind.HasContent() {
		key, err := s.contents.Put(ctx, bytes.NewReader(p.Data), int64(len(p.Data)))
		if err != nil {
			return nil, apperr.Wrap(apperr.KindDependencyUnavailable, "content store unavailable", err)
		}
		node.StorageKey = key
	}

	created, err := s.repo.Insert(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}

	if created.Kind == KindImage {
		job := queue.Job{AccountID: created.OwnerID, FileID: created.ID, ContentRef: created.StorageKey}
		if err := s.jobs.Enqueue(ctx, job); err != nil {
			log.Printf("file: thumbnail job dispatch failed for %s: %v", created.ID, err)
		}
	}

	return created, nil
}

// Get returns the node when the requester owns it or it is public.
// Absence and denied access are both reported as not_found, so the
// existence of private records is never leaked.
func (s *Service) Get(ctx context.Context, id, requesterID string) (*FileNode, error) {
	node, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "Not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	if node.OwnerID != requesterID && !node.IsPublic {
		return nil, apperr.New(apperr.KindNotFound, "Not found")
	}
	return node, nil
}

// List returns page p of the requester's nodes under parent (insertion
// order, PageSize per page). Out-of-range pages yield an empty slice.
func (s *Service) List(ctx context.Context, requesterID string, parent ParentRef, page int) ([]*FileNode, error) {
	if page < 0 {
		return []*FileNode{}, nil
	}
	nodes, err := s.repo.ListByOwnerAndParent(ctx, requesterID, parent, PageSize, page*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return nodes, nil
}

// SetVisibility toggles is_public. Only the owner may do so; for everyone
// else the record does not exist. Setting the current value is a no-op
// success.
func (s *Service) SetVisibility(ctx context.Context, id, requesterID string, isPublic bool) (*FileNode, error) {
	node, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "Not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	if node.OwnerID != requesterID {
		return nil, apperr.New(apperr.KindNotFound, "Not found")
	}
	if node.IsPublic == isPublic {
		return node, nil
	}

	updated, err := s.repo.UpdateVisibility(ctx, id, isPublic)
	if err != nil {
		return nil, fmt.Errorf("update visibility: %w", err)
	}
	return updated, nil
}

// Data resolves the node under the same access rules as Get, then streams
// its content. Folders have no content; a record whose blob cannot be
// resolved reports content_missing, distinct from a missing record.
// The caller must close the returned reader.
func (s *Service) Data(ctx context.Context, id, requesterID string) (io.ReadCloser, *FileNode, error) {
	node, err := s.Get(ctx, id, requesterID)
	if err != nil {
		return nil, nil, err
	}
	if !node.Kind.HasContent() {
		return nil, nil, apperr.New(apperr.KindNoContent, "A folder doesn't have content")
	}
	if node.StorageKey == "" {
		return nil, nil, apperr.New(apperr.KindContentMissing, "Not found")
	}

	rc, err := s.contents.Get(ctx, node.StorageKey)
	if errors.Is(err, storage.ErrObjectMissing) {
		return nil, nil, apperr.New(apperr.KindContentMissing, "Not found")
	}
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.KindDependencyUnavailable, "content store unavailable", err)
	}
	return rc, node, nil
}

// Count returns the total number of file nodes.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
