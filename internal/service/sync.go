// Package service implements the sync and document use cases over the
// repository and blob layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
	"github.com/paperdock/librarysync/internal/repository"
)

// PullResult is the server's answer to a delta or full pull.
type PullResult struct {
	Changes    model.Changes
	Deletions  model.Deletions
	ServerTime time.Time
}

// PushResult reports conflicts and the timestamp clients should persist
// as their next sync cursor.
type PushResult struct {
	Conflicts  []model.Conflict
	ServerTime time.Time
}

// StatusInfo is the unauthenticated liveness payload.
type StatusInfo struct {
	Version    string
	Counts     model.Counts
	ServerTime time.Time
}

// SyncService reconciles a client's local state with server state.
type SyncService interface {
	// Pull returns rows modified strictly after since, or a full
	// snapshot (tombstones included) when since is nil.
	Pull(ctx context.Context, since *time.Time) (PullResult, error)
	// Push applies client creates/updates with last-write-wins conflict
	// resolution, then soft-deletes the ids in deletions.
	Push(ctx context.Context, changes model.Changes, deletions model.Deletions) (PushResult, error)
	// Status returns the server version and live entity counts.
	Status(ctx context.Context) (StatusInfo, error)
	// PurgeDeleted permanently removes tombstones older than before.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

type SyncServiceImpl struct {
	repo     repository.RecordRepository
	version  string
	maxBatch int
}

// NewSyncService constructs SyncService with a push batch limit.
func NewSyncService(repo repository.RecordRepository, version string, maxBatch int) *SyncServiceImpl {
	if maxBatch <= 0 {
		maxBatch = 5000
	}
	return &SyncServiceImpl{repo: repo, version: version, maxBatch: maxBatch}
}

// Pull collects per-kind changes. A full snapshot is a modified-since
// query from the epoch, so tombstones are always included and clients
// learn of deletions.
func (s *SyncServiceImpl) Pull(ctx context.Context, since *time.Time) (PullResult, error) {
	cursor := time.Time{}
	if since != nil {
		cursor = *since
	}

	var (
		res PullResult
		err error
	)
	if res.Changes.Documents, err = s.repo.DocumentsModifiedSince(ctx, cursor); err != nil {
		return PullResult{}, fmt.Errorf("pull documents: %w", err)
	}
	if res.Changes.Annotations, err = s.repo.AnnotationsModifiedSince(ctx, cursor); err != nil {
		return PullResult{}, fmt.Errorf("pull annotations: %w", err)
	}
	if res.Changes.Collections, err = s.repo.CollectionsModifiedSince(ctx, cursor); err != nil {
		return PullResult{}, fmt.Errorf("pull collections: %w", err)
	}
	if res.Changes.Tags, err = s.repo.TagsModifiedSince(ctx, cursor); err != nil {
		return PullResult{}, fmt.Errorf("pull tags: %w", err)
	}

	// Convenience echo: ids already implied by the returned deleted rows.
	for _, d := range res.Changes.Documents {
		if d.Deleted {
			res.Deletions.DocumentIDs = append(res.Deletions.DocumentIDs, d.ID)
		}
	}
	for _, a := range res.Changes.Annotations {
		if a.Deleted {
			res.Deletions.AnnotationIDs = append(res.Deletions.AnnotationIDs, a.ID)
		}
	}
	for _, c := range res.Changes.Collections {
		if c.Deleted {
			res.Deletions.CollectionIDs = append(res.Deletions.CollectionIDs, c.ID)
		}
	}
	for _, t := range res.Changes.Tags {
		if t.Deleted {
			res.Deletions.TagIDs = append(res.Deletions.TagIDs, t.ID)
		}
	}

	res.ServerTime = time.Now().UTC()
	return res, nil
}

// Push applies incoming rows one kind at a time, documents before
// annotations so the annotation FK finds its document. Conflicting
// writes are skipped, not fatal: the rest of the batch still commits.
func (s *SyncServiceImpl) Push(ctx context.Context, changes model.Changes, deletions model.Deletions) (PushResult, error) {
	total := len(changes.Documents) + len(changes.Annotations) +
		len(changes.Collections) + len(changes.Tags)
	if total > s.maxBatch {
		return PushResult{}, fmt.Errorf("push batch too large (%d > %d): %w",
			total, s.maxBatch, errs.ErrInvalidArgument)
	}

	var conflicts []model.Conflict

	for _, d := range changes.Documents {
		existing, err := s.repo.GetDocument(ctx, d.ID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return PushResult{}, fmt.Errorf("push document %s: %w", d.ID, err)
		}
		if existing != nil && existing.Modified.After(d.Modified) {
			conflicts = append(conflicts, serverWins(model.KindDocument, d.ID))
			continue
		}
		if _, _, err := s.repo.UpsertDocument(ctx, d); err != nil {
			return PushResult{}, fmt.Errorf("push document %s: %w", d.ID, err)
		}
	}

	for _, a := range changes.Annotations {
		existing, err := s.repo.GetAnnotation(ctx, a.ID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return PushResult{}, fmt.Errorf("push annotation %s: %w", a.ID, err)
		}
		if existing != nil && existing.Modified.After(a.Modified) {
			conflicts = append(conflicts, serverWins(model.KindAnnotation, a.ID))
			continue
		}
		if _, err := s.repo.UpsertAnnotation(ctx, a); err != nil {
			return PushResult{}, fmt.Errorf("push annotation %s: %w", a.ID, err)
		}
	}

	for _, c := range changes.Collections {
		existing, err := s.repo.GetCollection(ctx, c.ID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return PushResult{}, fmt.Errorf("push collection %s: %w", c.ID, err)
		}
		if existing != nil && existing.Modified.After(c.Modified) {
			conflicts = append(conflicts, serverWins(model.KindCollection, c.ID))
			continue
		}
		if _, err := s.repo.UpsertCollection(ctx, c); err != nil {
			return PushResult{}, fmt.Errorf("push collection %s: %w", c.ID, err)
		}
	}

	// Tags merge unconditionally: usage counts are low-stakes metadata,
	// not worth a conflict round-trip.
	for _, t := range changes.Tags {
		if _, err := s.repo.UpsertTag(ctx, t); err != nil {
			return PushResult{}, fmt.Errorf("push tag %s: %w", t.ID, err)
		}
	}

	if err := s.applyDeletions(ctx, deletions); err != nil {
		return PushResult{}, err
	}

	return PushResult{Conflicts: conflicts, ServerTime: time.Now().UTC()}, nil
}

func (s *SyncServiceImpl) applyDeletions(ctx context.Context, del model.Deletions) error {
	type kindDelete struct {
		kind model.Kind
		ids  []string
		fn   func(context.Context, string, bool) error
	}
	for _, kd := range []kindDelete{
		{model.KindDocument, del.DocumentIDs, s.repo.DeleteDocument},
		{model.KindAnnotation, del.AnnotationIDs, s.repo.DeleteAnnotation},
		{model.KindCollection, del.CollectionIDs, s.repo.DeleteCollection},
		{model.KindTag, del.TagIDs, s.repo.DeleteTag},
	} {
		for _, id := range kd.ids {
			err := kd.fn(ctx, id, false)
			if err != nil && !errors.Is(err, errs.ErrNotFound) {
				return fmt.Errorf("delete %s %s: %w", kd.kind, id, err)
			}
		}
	}
	return nil
}

// Status never requires auth; it backs external liveness probes.
func (s *SyncServiceImpl) Status(ctx context.Context) (StatusInfo, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return StatusInfo{}, fmt.Errorf("status counts: %w", err)
	}
	return StatusInfo{
		Version:    s.version,
		Counts:     counts,
		ServerTime: time.Now().UTC(),
	}, nil
}

// PurgeDeleted is maintenance, not sync; clients that have not pulled
// since the cutoff fall back to a full snapshot on their next sync.
func (s *SyncServiceImpl) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	if before.IsZero() {
		return 0, fmt.Errorf("purge: empty cutoff: %w", errs.ErrInvalidArgument)
	}
	n, err := s.repo.PurgeDeletedBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge deleted: %w", err)
	}
	return n, nil
}

func serverWins(kind model.Kind, id string) model.Conflict {
	return model.Conflict{
		EntityType: kind,
		EntityID:   id,
		Resolution: model.ResolutionServerWins,
		Reason:     "server has newer version",
	}
}
