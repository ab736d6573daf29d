package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tm.UTC()
}

func TestSync_Push_LastWriteWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	// Server holds the newer revision of p1.
	repo.docs["p1"] = model.Document{ID: "p1", Title: "Title B", Modified: ts(t, "2025-01-02T10:00:00Z")}

	res, err := svc.Push(ctx, model.Changes{Documents: []model.Document{
		{ID: "p1", Title: "Title A", Modified: ts(t, "2025-01-02T09:00:00Z")},
	}}, model.Deletions{})
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	c := res.Conflicts[0]
	require.Equal(t, model.KindDocument, c.EntityType)
	require.Equal(t, "p1", c.EntityID)
	require.Equal(t, model.ResolutionServerWins, c.Resolution)
	require.Equal(t, "Title B", repo.docs["p1"].Title)
	require.False(t, res.ServerTime.IsZero())
}

func TestSync_Push_NewerClientOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	repo.docs["p1"] = model.Document{ID: "p1", Title: "old", Modified: ts(t, "2025-01-01T00:00:00Z")}

	res, err := svc.Push(ctx, model.Changes{Documents: []model.Document{
		{ID: "p1", Title: "new", Modified: ts(t, "2025-01-02T00:00:00Z")},
	}}, model.Deletions{})
	require.NoError(t, err)
	require.Empty(t, res.Conflicts)
	require.Equal(t, "new", repo.docs["p1"].Title)
}

func TestSync_Push_EqualTimestampClientWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	same := ts(t, "2025-03-01T12:00:00Z")
	repo.docs["p1"] = model.Document{ID: "p1", Title: "server", Modified: same}

	res, err := svc.Push(ctx, model.Changes{Documents: []model.Document{
		{ID: "p1", Title: "client", Modified: same},
	}}, model.Deletions{})
	require.NoError(t, err)
	require.Empty(t, res.Conflicts)
	require.Equal(t, "client", repo.docs["p1"].Title)
}

func TestSync_Push_TagsNeverConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	repo.tags["t1"] = model.Tag{ID: "t1", Name: "ml", UsageCount: 9, Modified: ts(t, "2025-05-01T00:00:00Z")}

	res, err := svc.Push(ctx, model.Changes{Tags: []model.Tag{
		{ID: "t1", Name: "ml", UsageCount: 3, Modified: ts(t, "2025-01-01T00:00:00Z")},
	}}, model.Deletions{})
	require.NoError(t, err)
	require.Empty(t, res.Conflicts)
	require.Equal(t, 3, repo.tags["t1"].UsageCount)
}

func TestSync_Push_DeletionsAppliedAndMissingIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	repo.docs["p1"] = model.Document{ID: "p1", Modified: ts(t, "2025-01-01T00:00:00Z")}

	_, err := svc.Push(ctx, model.Changes{}, model.Deletions{
		DocumentIDs: []string{"p1", "ghost"},
	})
	require.NoError(t, err)
	require.True(t, repo.docs["p1"].Deleted)
}

func TestSync_Push_BatchTooLarge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 2)

	docs := []model.Document{
		{ID: "a", Modified: time.Now()},
		{ID: "b", Modified: time.Now()},
		{ID: "c", Modified: time.Now()},
	}
	_, err := svc.Push(ctx, model.Changes{Documents: docs}, model.Deletions{})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSync_Push_DocumentsBeforeAnnotations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	// The annotation references a document arriving in the same batch.
	_, err := svc.Push(ctx, model.Changes{
		Documents:   []model.Document{{ID: "p1", Modified: time.Now()}},
		Annotations: []model.Annotation{{ID: "a1", DocumentID: "p1", Modified: time.Now()}},
	}, model.Deletions{})
	require.NoError(t, err)
	require.Contains(t, repo.docs, "p1")
	require.Contains(t, repo.anns, "a1")
}

func TestSync_Pull_DeltaIsStrictlyAfter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	cursor := ts(t, "2025-06-01T00:00:00Z")
	repo.docs["old"] = model.Document{ID: "old", Modified: cursor.Add(-time.Hour)}
	repo.docs["at"] = model.Document{ID: "at", Modified: cursor}
	repo.docs["new"] = model.Document{ID: "new", Modified: cursor.Add(time.Hour)}

	res, err := svc.Pull(ctx, &cursor)
	require.NoError(t, err)
	require.Len(t, res.Changes.Documents, 1)
	require.Equal(t, "new", res.Changes.Documents[0].ID)
}

func TestSync_Pull_FullSnapshotIncludesTombstones(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	repo.docs["live"] = model.Document{ID: "live", Modified: ts(t, "2025-01-01T00:00:00Z")}
	repo.docs["gone"] = model.Document{ID: "gone", Deleted: true, Modified: ts(t, "2025-02-01T00:00:00Z")}
	repo.anns["a-gone"] = model.Annotation{ID: "a-gone", DocumentID: "live", Deleted: true, Modified: ts(t, "2025-02-01T00:00:00Z")}

	res, err := svc.Pull(ctx, nil)
	require.NoError(t, err)
	require.Len(t, res.Changes.Documents, 2)
	require.Equal(t, []string{"gone"}, res.Deletions.DocumentIDs)
	require.Equal(t, []string{"a-gone"}, res.Deletions.AnnotationIDs)
	require.False(t, res.ServerTime.IsZero())
}

func TestSync_Status(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "1.2.3", 0)

	repo.docs["p1"] = model.Document{ID: "p1"}
	repo.docs["p2"] = model.Document{ID: "p2", Deleted: true}
	repo.tags["t1"] = model.Tag{ID: "t1"}

	info, err := svc.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, int64(1), info.Counts.Documents)
	require.Equal(t, int64(1), info.Counts.Tags)
	require.False(t, info.ServerTime.IsZero())
}

func TestSync_Status_RepoError(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	repo.failOn = "Counts"
	svc := NewSyncService(repo, "test", 0)

	_, err := svc.Status(context.Background())
	require.Error(t, err)
}

func TestSync_PurgeDeleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewSyncService(repo, "test", 0)

	cutoff := ts(t, "2025-06-01T00:00:00Z")
	repo.docs["old-tombstone"] = model.Document{ID: "old-tombstone", Deleted: true, Modified: cutoff.Add(-time.Hour)}
	repo.docs["fresh-tombstone"] = model.Document{ID: "fresh-tombstone", Deleted: true, Modified: cutoff.Add(time.Hour)}
	repo.docs["live"] = model.Document{ID: "live", Modified: cutoff.Add(-time.Hour)}

	n, err := svc.PurgeDeleted(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.NotContains(t, repo.docs, "old-tombstone")
	require.Contains(t, repo.docs, "fresh-tombstone")
	require.Contains(t, repo.docs, "live")
}

func TestSync_PurgeDeleted_EmptyCutoff(t *testing.T) {
	t.Parallel()
	svc := NewSyncService(newFakeRepo(), "test", 0)
	_, err := svc.PurgeDeleted(context.Background(), time.Time{})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
