// Package repository declares persistence interfaces implemented by storage backends.
package repository

import (
	"context"
	"time"

	"github.com/paperdock/librarysync/internal/model"
)

// RecordRepository provides durable, queryable storage for the four
// entity kinds with delta-sync support. Soft-deleted rows stay visible
// to modified-since queries so deletions propagate to other devices;
// only PurgeDeletedBefore removes them physically.
type RecordRepository interface {
	// UpsertDocument inserts or fully replaces the row keyed by id and
	// reports whether a new row was created.
	UpsertDocument(ctx context.Context, d model.Document) (model.Document, bool, error)
	GetDocument(ctx context.Context, id string) (*model.Document, error)
	ListDocuments(ctx context.Context, includeDeleted bool) ([]model.Document, error)
	DocumentsModifiedSince(ctx context.Context, since time.Time) ([]model.Document, error)
	// DeleteDocument soft-deletes by default; hard removes the row and
	// cascades to its annotations.
	DeleteDocument(ctx context.Context, id string, hard bool) error

	UpsertAnnotation(ctx context.Context, a model.Annotation) (model.Annotation, error)
	GetAnnotation(ctx context.Context, id string) (*model.Annotation, error)
	ListAnnotations(ctx context.Context, includeDeleted bool) ([]model.Annotation, error)
	AnnotationsModifiedSince(ctx context.Context, since time.Time) ([]model.Annotation, error)
	DeleteAnnotation(ctx context.Context, id string, hard bool) error

	UpsertCollection(ctx context.Context, c model.Collection) (model.Collection, error)
	GetCollection(ctx context.Context, id string) (*model.Collection, error)
	ListCollections(ctx context.Context, includeDeleted bool) ([]model.Collection, error)
	CollectionsModifiedSince(ctx context.Context, since time.Time) ([]model.Collection, error)
	DeleteCollection(ctx context.Context, id string, hard bool) error

	UpsertTag(ctx context.Context, t model.Tag) (model.Tag, error)
	GetTag(ctx context.Context, id string) (*model.Tag, error)
	ListTags(ctx context.Context, includeDeleted bool) ([]model.Tag, error)
	TagsModifiedSince(ctx context.Context, since time.Time) ([]model.Tag, error)
	DeleteTag(ctx context.Context, id string, hard bool) error

	// Counts returns live (non-deleted) row counts per kind.
	Counts(ctx context.Context) (model.Counts, error)

	// PurgeDeletedBefore hard-deletes soft-deleted rows with modified
	// strictly older than cutoff, across all four tables, atomically.
	// Returns the number of rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
