package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
)

func TestDocuments_GetAndUpsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewDocumentService(repo, newFakeBlob())

	doc := model.Document{ID: "p1", Title: "Attention Is All You Need", Modified: time.Now().UTC()}
	stored, created, err := svc.Upsert(ctx, doc)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "p1", stored.ID)

	_, created, err = svc.Upsert(ctx, doc)
	require.NoError(t, err)
	require.False(t, created)

	got, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, doc.Title, got.Title)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.Get(ctx, "")
	require.ErrorIs(t, err, errs.ErrInvalidID)

	_, _, err = svc.Upsert(ctx, model.Document{})
	require.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestDocuments_ListPaging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewDocumentService(repo, newFakeBlob())

	for _, id := range []string{"a", "b", "c", "d"} {
		repo.docs[id] = model.Document{ID: id}
	}
	repo.docs["gone"] = model.Document{ID: "gone", Deleted: true}

	docs, total, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Len(t, docs, 4)

	docs, total, err = svc.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Len(t, docs, 2)

	docs, total, err = svc.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Len(t, docs, 2)

	docs, total, err = svc.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Empty(t, docs)

	_, _, err = svc.List(ctx, -1, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDocuments_HardDeleteRemovesBinary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	blobs := newFakeBlob()
	svc := NewDocumentService(repo, blobs)

	repo.docs["p1"] = model.Document{ID: "p1"}
	blobs.files["p1"] = []byte("pdf bytes")

	require.NoError(t, svc.Delete(ctx, "p1", true))
	require.NotContains(t, repo.docs, "p1")
	require.NotContains(t, blobs.files, "p1")
}

func TestDocuments_SoftDeleteKeepsBinary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRepo()
	blobs := newFakeBlob()
	svc := NewDocumentService(repo, blobs)

	repo.docs["p1"] = model.Document{ID: "p1"}
	blobs.files["p1"] = []byte("pdf bytes")

	require.NoError(t, svc.Delete(ctx, "p1", false))
	require.True(t, repo.docs["p1"].Deleted)
	require.Contains(t, blobs.files, "p1")
}

func TestDocuments_SaveBinary_DigestChecked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	blobs := newFakeBlob()
	svc := NewDocumentService(newFakeRepo(), blobs)

	data := []byte("%PDF-1.7 content")
	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	size, digest, err := svc.SaveBinary(ctx, "p1", data, want)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), size)
	require.Equal(t, want, digest)
	require.Equal(t, data, blobs.files["p1"])
}

func TestDocuments_SaveBinary_MismatchPersistsNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	blobs := newFakeBlob()
	svc := NewDocumentService(newFakeRepo(), blobs)

	_, _, err := svc.SaveBinary(ctx, "p1", []byte("content"), "deadbeef")
	require.ErrorIs(t, err, errs.ErrIntegrity)
	require.Empty(t, blobs.files)
}

func TestDocuments_SaveBinary_EmptyDigestSkipsCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	blobs := newFakeBlob()
	svc := NewDocumentService(newFakeRepo(), blobs)

	size, digest, err := svc.SaveBinary(ctx, "p1", []byte("x"), "")
	require.NoError(t, err)
	require.Equal(t, int64(1), size)
	require.NotEmpty(t, digest)
}

func TestDocuments_BinaryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewDocumentService(newFakeRepo(), newFakeBlob())

	data := []byte("round trip payload")
	_, wantDigest, err := svc.SaveBinary(ctx, "p1", data, "")
	require.NoError(t, err)

	got, digest, err := svc.LoadBinary(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.Equal(t, wantDigest, digest)
}

func TestDocuments_LoadBinary_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewDocumentService(newFakeRepo(), newFakeBlob())
	_, _, err := svc.LoadBinary(context.Background(), "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDocuments_BinaryRejectsTraversalIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewDocumentService(newFakeRepo(), newFakeBlob())

	for _, id := range []string{"", "a/b", `a\b`, "../etc"} {
		_, _, err := svc.SaveBinary(ctx, id, []byte("x"), "")
		require.ErrorIs(t, err, errs.ErrInvalidID, "save id %q", id)
		_, _, err = svc.LoadBinary(ctx, id)
		require.ErrorIs(t, err, errs.ErrInvalidID, "load id %q", id)
	}
}
