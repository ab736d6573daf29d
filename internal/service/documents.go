package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/paperdock/librarysync/internal/blob"
	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
	"github.com/paperdock/librarysync/internal/repository"
)

// DocumentService covers single-document metadata CRUD and binary storage.
type DocumentService interface {
	Get(ctx context.Context, id string) (*model.Document, error)
	// List pages the non-deleted set: offset then limit, zero = no bound.
	// The second return is the total count before paging.
	List(ctx context.Context, offset, limit int) ([]model.Document, int, error)
	// Upsert reports whether the row was newly created.
	Upsert(ctx context.Context, d model.Document) (model.Document, bool, error)
	// Delete soft-deletes by default; hard removes the row and its binary.
	Delete(ctx context.Context, id string, hard bool) error

	// SaveBinary persists fully accumulated upload bytes. When
	// expectedDigest is non-empty it must match the computed digest or
	// nothing is persisted. Returns bytes written and the digest.
	SaveBinary(ctx context.Context, id string, data []byte, expectedDigest string) (int64, string, error)
	// LoadBinary returns the full content and its digest.
	LoadBinary(ctx context.Context, id string) ([]byte, string, error)
}

type DocumentServiceImpl struct {
	repo  repository.RecordRepository
	blobs blob.Store
}

// NewDocumentService constructs DocumentService with injected storage.
func NewDocumentService(repo repository.RecordRepository, blobs blob.Store) *DocumentServiceImpl {
	return &DocumentServiceImpl{repo: repo, blobs: blobs}
}

func (s *DocumentServiceImpl) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("get document: %w", errs.ErrInvalidID)
	}
	return s.repo.GetDocument(ctx, id)
}

func (s *DocumentServiceImpl) List(ctx context.Context, offset, limit int) ([]model.Document, int, error) {
	if offset < 0 || limit < 0 {
		return nil, 0, fmt.Errorf("negative offset/limit: %w", errs.ErrInvalidArgument)
	}
	docs, err := s.repo.ListDocuments(ctx, false)
	if err != nil {
		return nil, 0, err
	}
	total := len(docs)
	if offset >= len(docs) {
		return nil, total, nil
	}
	docs = docs[offset:]
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, total, nil
}

func (s *DocumentServiceImpl) Upsert(ctx context.Context, d model.Document) (model.Document, bool, error) {
	if d.ID == "" {
		return model.Document{}, false, fmt.Errorf("upsert document: %w", errs.ErrInvalidID)
	}
	return s.repo.UpsertDocument(ctx, d)
}

func (s *DocumentServiceImpl) Delete(ctx context.Context, id string, hard bool) error {
	if id == "" {
		return fmt.Errorf("delete document: %w", errs.ErrInvalidID)
	}
	if err := s.repo.DeleteDocument(ctx, id, hard); err != nil {
		return err
	}
	if hard {
		// The row is gone, annotations cascaded; drop the binary too.
		if _, err := s.blobs.Delete(ctx, id); err != nil && !errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("delete binary %s: %w", id, err)
		}
	}
	return nil
}

// SaveBinary is all-or-nothing: a digest mismatch discards the
// accumulated bytes rather than persisting a corrupt partial file.
func (s *DocumentServiceImpl) SaveBinary(ctx context.Context, id string, data []byte, expectedDigest string) (int64, string, error) {
	if err := blob.ValidateID(id); err != nil {
		return 0, "", err
	}
	digest := blob.Digest(data)
	if expectedDigest != "" && expectedDigest != digest {
		return 0, "", fmt.Errorf("digest mismatch: expected %s, got %s: %w",
			expectedDigest, digest, errs.ErrIntegrity)
	}
	if err := s.blobs.Save(ctx, id, data); err != nil {
		return 0, "", err
	}
	return int64(len(data)), digest, nil
}

func (s *DocumentServiceImpl) LoadBinary(ctx context.Context, id string) ([]byte, string, error) {
	if err := blob.ValidateID(id); err != nil {
		return nil, "", err
	}
	data, err := s.blobs.Read(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return data, blob.Digest(data), nil
}
