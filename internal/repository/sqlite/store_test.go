package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/migrate"
	"github.com/paperdock/librarysync/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, migrate.Up(context.Background(), store.DB()))
	return store
}

func mts(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tm.UTC()
}

func TestDocument_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	doc := model.Document{
		ID:                 "p1",
		Title:              "Attention Is All You Need",
		Authors:            []string{"Vaswani", "Shazeer"},
		Abstract:           "The dominant sequence transduction models...",
		DOI:                "10.48550/arXiv.1706.03762",
		PublishedDate:      "2017-06-12",
		Journal:            "NeurIPS",
		Volume:             "30",
		Issue:              "1",
		Pages:              "5998-6008",
		Keywords:           []string{"transformer", "attention"},
		PageCount:          15,
		FileSize:           2113548,
		Thumbnail:          []byte{0x89, 0x50, 0x4e, 0x47},
		ReadingProgress:    0.42,
		CurrentPage:        7,
		LastOpened:         mts(t, "2025-04-01T09:30:00Z"),
		ReadingTimeSeconds: 5400,
		ImportedAt:         mts(t, "2025-03-01T08:00:00Z"),
		Metadata:           map[string]string{"source": "arxiv"},
		Tags:               []string{"nlp"},
		TagIDs:             []string{"t1"},
		CollectionIDs:      []string{"c1", "c2"},
		Modified:           mts(t, "2025-04-01T10:00:00Z"),
	}

	stored, created, err := store.UpsertDocument(ctx, doc)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, doc.Modified, stored.Modified)

	got, err := store.GetDocument(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, doc, *got)

	// Full replace on second upsert.
	doc.Title = "updated"
	_, created, err = store.UpsertDocument(ctx, doc)
	require.NoError(t, err)
	require.False(t, created)

	got, err = store.GetDocument(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "updated", got.Title)
}

func TestDocument_EmptyCollectionsRoundTripAsNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	_, _, err := store.UpsertDocument(ctx, model.Document{ID: "p1", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)

	got, err := store.GetDocument(ctx, "p1")
	require.NoError(t, err)
	require.Nil(t, got.Authors)
	require.Nil(t, got.Metadata)
	require.Nil(t, got.TagIDs)
}

func TestDocument_UpsertDefaultsModified(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	stored, _, err := store.UpsertDocument(ctx, model.Document{ID: "p1"})
	require.NoError(t, err)
	require.False(t, stored.Modified.IsZero())
	require.False(t, stored.ImportedAt.IsZero())
}

func TestDocument_EmptyIDRejected(t *testing.T) {
	t.Parallel()
	_, _, err := newTestStore(t).UpsertDocument(context.Background(), model.Document{})
	require.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestDocument_GetMissing(t *testing.T) {
	t.Parallel()
	_, err := newTestStore(t).GetDocument(context.Background(), "nope")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDocument_SoftDeleteVisibility(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	before := mts(t, "2025-01-01T00:00:00Z")
	_, _, err := store.UpsertDocument(ctx, model.Document{ID: "p1", Modified: before})
	require.NoError(t, err)

	require.NoError(t, store.DeleteDocument(ctx, "p1", false))

	live, err := store.ListDocuments(ctx, false)
	require.NoError(t, err)
	require.Empty(t, live)

	all, err := store.ListDocuments(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.True(t, all[0].Deleted)

	// Tombstone stays fetchable by id.
	got, err := store.GetDocument(ctx, "p1")
	require.NoError(t, err)
	require.True(t, got.Deleted)

	// The delete bumped modified, so delta pulls see the tombstone.
	changed, err := store.DocumentsModifiedSince(ctx, before)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	require.True(t, changed[0].Deleted)
}

func TestDocument_DeleteMissing(t *testing.T) {
	t.Parallel()
	err := newTestStore(t).DeleteDocument(context.Background(), "nope", false)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDocument_HardDeleteCascadesAnnotations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	_, _, err := store.UpsertDocument(ctx, model.Document{ID: "p1", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)
	_, err = store.UpsertAnnotation(ctx, model.Annotation{
		ID: "a1", DocumentID: "p1", Type: model.AnnotationHighlight,
		Modified: mts(t, "2025-01-01T00:00:00Z"),
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteDocument(ctx, "p1", true))

	_, err = store.GetDocument(ctx, "p1")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = store.GetAnnotation(ctx, "a1")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDocument_ModifiedSinceIsStrictlyAfter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	cursor := mts(t, "2025-06-01T00:00:00Z")
	for _, d := range []model.Document{
		{ID: "old", Modified: cursor.Add(-time.Second)},
		{ID: "at", Modified: cursor},
		{ID: "new", Modified: cursor.Add(time.Second)},
	} {
		_, _, err := store.UpsertDocument(ctx, d)
		require.NoError(t, err)
	}

	changed, err := store.DocumentsModifiedSince(ctx, cursor)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	require.Equal(t, "new", changed[0].ID)
}

func TestAnnotation_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	_, _, err := store.UpsertDocument(ctx, model.Document{ID: "p1", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)

	ann := model.Annotation{
		ID:           "a1",
		DocumentID:   "p1",
		Type:         model.AnnotationHighlight,
		Color:        "#ffde21",
		Page:         3,
		Bounds:       model.Rect{X: 10.5, Y: 20.25, Width: 120, Height: 14},
		SelectedText: "scaled dot-product attention",
		Note:         "core idea",
		Tags:         []string{"important"},
		Created:      mts(t, "2025-02-01T00:00:00Z"),
		Modified:     mts(t, "2025-02-02T00:00:00Z"),
	}
	_, err = store.UpsertAnnotation(ctx, ann)
	require.NoError(t, err)

	got, err := store.GetAnnotation(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, ann, *got)
}

func TestAnnotation_RequiresDocumentID(t *testing.T) {
	t.Parallel()
	_, err := newTestStore(t).UpsertAnnotation(context.Background(), model.Annotation{ID: "a1"})
	require.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestCollection_RoundTripAndOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	for _, c := range []model.Collection{
		{ID: "c2", Name: "Second", Type: model.CollectionFolder, SortOrder: 2, Modified: mts(t, "2025-01-01T00:00:00Z")},
		{ID: "c1", Name: "First", Type: model.CollectionSmart, SmartFilter: `{"tag":"ml"}`, SortOrder: 1, Modified: mts(t, "2025-01-02T00:00:00Z")},
	} {
		_, err := store.UpsertCollection(ctx, c)
		require.NoError(t, err)
	}

	colls, err := store.ListCollections(ctx, false)
	require.NoError(t, err)
	require.Len(t, colls, 2)
	require.Equal(t, "c1", colls[0].ID) // sort_order wins over insertion order
	require.Equal(t, `{"tag":"ml"}`, colls[0].SmartFilter)
}

func TestTag_NameNormalized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	stored, err := store.UpsertTag(ctx, model.Tag{ID: "t1", Name: "  Machine-Learning ", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)
	require.Equal(t, "machine-learning", stored.Name)

	got, err := store.GetTag(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "machine-learning", got.Name)
}

func TestCounts_ExcludeTombstones(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	_, _, err := store.UpsertDocument(ctx, model.Document{ID: "p1", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)
	_, _, err = store.UpsertDocument(ctx, model.Document{ID: "p2", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)
	_, err = store.UpsertTag(ctx, model.Tag{ID: "t1", Name: "ml", Modified: mts(t, "2025-01-01T00:00:00Z")})
	require.NoError(t, err)
	require.NoError(t, store.DeleteDocument(ctx, "p2", false))

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), counts.Documents)
	require.Equal(t, int64(0), counts.Annotations)
	require.Equal(t, int64(1), counts.Tags)
}

func TestPurgeDeletedBefore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	old := mts(t, "2025-01-01T00:00:00Z")
	fresh := mts(t, "2025-07-01T00:00:00Z")
	cutoff := mts(t, "2025-06-01T00:00:00Z")

	_, _, err := store.UpsertDocument(ctx, model.Document{ID: "old-gone", Modified: old, Deleted: true})
	require.NoError(t, err)
	_, _, err = store.UpsertDocument(ctx, model.Document{ID: "fresh-gone", Modified: fresh, Deleted: true})
	require.NoError(t, err)
	_, _, err = store.UpsertDocument(ctx, model.Document{ID: "live", Modified: old})
	require.NoError(t, err)

	n, err := store.PurgeDeletedBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = store.GetDocument(ctx, "old-gone")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = store.GetDocument(ctx, "fresh-gone")
	require.NoError(t, err)
	_, err = store.GetDocument(ctx, "live")
	require.NoError(t, err)
}
