package file

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filebox/service/internal/apperr"
	"github.com/filebox/service/internal/queue"
	"github.com/filebox/service/internal/storage"
)

type stubDispatcher struct {
	mu   sync.Mutex
	err  error
	jobs []queue.Job
}

func (d *stubDispatcher) Enqueue(_ context.Context, job queue.Job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}

func newTestService(t *testing.T) (*Service, *MemoryRepository, *stubDispatcher) {
	t.Helper()
	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	repo := NewMemoryRepository()
	jobs := &stubDispatcher{}
	return NewService(repo, store, jobs), repo, jobs
}

func TestService_CreateFolderAndFile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	folder, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "docs", Kind: KindFolder, Parent: RootParent(),
	})
	require.NoError(t, err)
	assert.Equal(t, KindFolder, folder.Kind)
	assert.True(t, folder.Parent.IsRoot())
	assert.Empty(t, folder.StorageKey)

	node, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "a.txt", Kind: KindFile,
		Parent: FolderParent(folder.ID), Data: []byte("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, folder.ID, node.Parent.FolderID())
	assert.NotEmpty(t, node.StorageKey)

	rc, got, err := svc.Data(ctx, node.ID, "alice")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
	assert.Equal(t, node.ID, got.ID)
}

func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Create(ctx, CreateParams{OwnerID: "alice", Kind: KindFile, Data: []byte("x")})
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
	assert.Equal(t, "Missing name", apperr.MessageOf(err))

	_, err = svc.Create(ctx, CreateParams{OwnerID: "alice", Name: "a", Kind: Kind("archive")})
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
	assert.Equal(t, "Missing type", apperr.MessageOf(err))

	_, err = svc.Create(ctx, CreateParams{OwnerID: "alice", Name: "a", Kind: KindFile})
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
	assert.Equal(t, "Missing data", apperr.MessageOf(err))
}

func TestService_CreateInvalidParent(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	leaf, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "a.txt", Kind: KindFile,
		Parent: RootParent(), Data: []byte("x"),
	})
	require.NoError(t, err)

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	// Parent is a file, not a folder.
	_, err = svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "b.txt", Kind: KindFile,
		Parent: FolderParent(leaf.ID), Data: []byte("x"),
	})
	assert.Equal(t, apperr.KindInvalidParent, apperr.KindOf(err))
	assert.Equal(t, "Parent is not a folder", apperr.MessageOf(err))

	// Parent does not exist.
	_, err = svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "c.txt", Kind: KindFile,
		Parent: FolderParent("no-such-id"), Data: []byte("x"),
	})
	assert.Equal(t, apperr.KindInvalidParent, apperr.KindOf(err))
	assert.Equal(t, "Parent not found", apperr.MessageOf(err))

	// Nothing was partially inserted.
	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_VisibilityAccess(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	node, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "private.txt", Kind: KindFile,
		Parent: RootParent(), Data: []byte("x"),
	})
	require.NoError(t, err)

	// Owner always reads; a stranger sees not_found, not forbidden.
	_, err = svc.Get(ctx, node.ID, "alice")
	require.NoError(t, err)
	_, err = svc.Get(ctx, node.ID, "bob")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// Only the owner can publish; for bob the record does not exist.
	_, err = svc.SetVisibility(ctx, node.ID, "bob", true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	published, err := svc.SetVisibility(ctx, node.ID, "alice", true)
	require.NoError(t, err)
	assert.True(t, published.IsPublic)

	got, err := svc.Get(ctx, node.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, node.ID, got.ID)
}

func TestService_SetVisibilityIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	node, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "a.txt", Kind: KindFile,
		Parent: RootParent(), Data: []byte("x"),
	})
	require.NoError(t, err)

	first, err := svc.SetVisibility(ctx, node.ID, "alice", true)
	require.NoError(t, err)
	second, err := svc.SetVisibility(ctx, node.ID, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, first.IsPublic, second.IsPublic)
	assert.Equal(t, first.ID, second.ID)
}

func TestService_ListPagination(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	folder, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "docs", Kind: KindFolder, Parent: RootParent(),
	})
	require.NoError(t, err)

	const total = 45
	created := map[string]bool{}
	for i := 0; i < total; i++ {
		node, err := svc.Create(ctx, CreateParams{
			OwnerID: "alice", Name: "f", Kind: KindFile,
			Parent: FolderParent(folder.ID), Data: []byte("x"),
		})
		require.NoError(t, err)
		created[node.ID] = true
	}

	seen := map[string]bool{}
	sizes := []int{}
	for page := 0; ; page++ {
		nodes, err := svc.List(ctx, "alice", FolderParent(folder.ID), page)
		require.NoError(t, err)
		if len(nodes) == 0 {
			break
		}
		sizes = append(sizes, len(nodes))
		for _, node := range nodes {
			assert.False(t, seen[node.ID], "duplicate across pages")
			seen[node.ID] = true
		}
	}

	assert.Equal(t, []int{20, 20, 5}, sizes)
	assert.Equal(t, created, seen)

	// Listing is owner-scoped: bob sees nothing under alice's folder.
	nodes, err := svc.List(ctx, "bob", FolderParent(folder.ID), 0)
	require.NoError(t, err)
	assert.Empty(t, nodes)

	// Negative pages behave like out-of-range ones.
	nodes, err = svc.List(ctx, "alice", FolderParent(folder.ID), -1)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestService_DataErrors(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	folder, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "docs", Kind: KindFolder, Parent: RootParent(),
	})
	require.NoError(t, err)

	_, _, err = svc.Data(ctx, folder.ID, "alice")
	assert.Equal(t, apperr.KindNoContent, apperr.KindOf(err))

	// A record whose blob vanished out of band reports content_missing,
	// not not_found.
	orphan, err := repo.Insert(ctx, &FileNode{
		OwnerID: "alice", Name: "ghost.txt", Kind: KindFile,
		Parent: RootParent(), StorageKey: "gone-0000",
	})
	require.NoError(t, err)
	_, _, err = svc.Data(ctx, orphan.ID, "alice")
	assert.Equal(t, apperr.KindContentMissing, apperr.KindOf(err))

	_, _, err = svc.Data(ctx, "no-such-id", "alice")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestService_ImageDispatchesJob(t *testing.T) {
	ctx := context.Background()
	svc, _, jobs := newTestService(t)

	node, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "pic.png", Kind: KindImage,
		Parent: RootParent(), Data: []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.NoError(t, err)

	require.Len(t, jobs.jobs, 1)
	assert.Equal(t, queue.Job{
		AccountID:  "alice",
		FileID:     node.ID,
		ContentRef: node.StorageKey,
	}, jobs.jobs[0])
}

func TestService_FileDoesNotDispatchJob(t *testing.T) {
	ctx := context.Background()
	svc, _, jobs := newTestService(t)

	_, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "a.txt", Kind: KindFile,
		Parent: RootParent(), Data: []byte("x"),
	})
	require.NoError(t, err)
	assert.Empty(t, jobs.jobs)
}

func TestService_CreateSurvivesDispatcherOutage(t *testing.T) {
	ctx := context.Background()
	svc, _, jobs := newTestService(t)
	jobs.err = errors.New("queue down")

	node, err := svc.Create(ctx, CreateParams{
		OwnerID: "alice", Name: "pic.png", Kind: KindImage,
		Parent: RootParent(), Data: []byte("img"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, node.ID)

	// The record and its content are fully readable despite the outage.
	rc, _, err := svc.Data(ctx, node.ID, "alice")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), content)
}
