package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
)

const documentCols = `id, title, authors, abstract, doi, published_date, journal, volume,
issue, pages, keywords, page_count, file_size, thumbnail, reading_progress,
current_page, last_opened, reading_time_seconds, imported_at, metadata,
tags, tag_ids, collection_ids, modified, is_deleted`

// scanner abstracts sql.Row and sql.Rows so one scan function serves both.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(sc scanner) (model.Document, error) {
	var (
		d                              model.Document
		authors, keywords, meta        string
		tags, tagIDs, collIDs          string
		lastOpened, importedAt, modTxt string
		deleted                        int
	)
	err := sc.Scan(&d.ID, &d.Title, &authors, &d.Abstract, &d.DOI, &d.PublishedDate,
		&d.Journal, &d.Volume, &d.Issue, &d.Pages, &keywords, &d.PageCount,
		&d.FileSize, &d.Thumbnail, &d.ReadingProgress, &d.CurrentPage,
		&lastOpened, &d.ReadingTimeSeconds, &importedAt, &meta,
		&tags, &tagIDs, &collIDs, &modTxt, &deleted)
	if err != nil {
		return model.Document{}, err
	}

	if d.Authors, err = decodeList(authors); err != nil {
		return model.Document{}, err
	}
	if d.Keywords, err = decodeList(keywords); err != nil {
		return model.Document{}, err
	}
	if d.Metadata, err = decodeMap(meta); err != nil {
		return model.Document{}, err
	}
	if d.Tags, err = decodeList(tags); err != nil {
		return model.Document{}, err
	}
	if d.TagIDs, err = decodeList(tagIDs); err != nil {
		return model.Document{}, err
	}
	if d.CollectionIDs, err = decodeList(collIDs); err != nil {
		return model.Document{}, err
	}
	if d.LastOpened, err = decodeTime(lastOpened); err != nil {
		return model.Document{}, err
	}
	if d.ImportedAt, err = decodeTime(importedAt); err != nil {
		return model.Document{}, err
	}
	if d.Modified, err = decodeTime(modTxt); err != nil {
		return model.Document{}, err
	}
	d.Deleted = deleted != 0
	return d, nil
}

// UpsertDocument inserts or fully replaces the row keyed by id. Modified
// and ImportedAt default to the current time when absent.
func (s *Store) UpsertDocument(ctx context.Context, d model.Document) (model.Document, bool, error) {
	if d.ID == "" {
		return model.Document{}, false, fmt.Errorf("document: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if d.Modified.IsZero() {
		d.Modified = now
	}
	if d.ImportedAt.IsZero() {
		d.ImportedAt = now
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM documents WHERE id=?`, d.ID).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return model.Document{}, false, err
	}
	created := errors.Is(err, sql.ErrNoRows)

	authors, err := encodeList(d.Authors)
	if err != nil {
		return model.Document{}, false, err
	}
	keywords, err := encodeList(d.Keywords)
	if err != nil {
		return model.Document{}, false, err
	}
	meta, err := encodeMap(d.Metadata)
	if err != nil {
		return model.Document{}, false, err
	}
	tags, err := encodeList(d.Tags)
	if err != nil {
		return model.Document{}, false, err
	}
	tagIDs, err := encodeList(d.TagIDs)
	if err != nil {
		return model.Document{}, false, err
	}
	collIDs, err := encodeList(d.CollectionIDs)
	if err != nil {
		return model.Document{}, false, err
	}

	var lastOpened string
	if !d.LastOpened.IsZero() {
		lastOpened = encodeTime(d.LastOpened)
	}

	const q = `
INSERT INTO documents (` + documentCols + `)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title, authors=excluded.authors, abstract=excluded.abstract,
  doi=excluded.doi, published_date=excluded.published_date, journal=excluded.journal,
  volume=excluded.volume, issue=excluded.issue, pages=excluded.pages,
  keywords=excluded.keywords, page_count=excluded.page_count, file_size=excluded.file_size,
  thumbnail=excluded.thumbnail, reading_progress=excluded.reading_progress,
  current_page=excluded.current_page, last_opened=excluded.last_opened,
  reading_time_seconds=excluded.reading_time_seconds, imported_at=excluded.imported_at,
  metadata=excluded.metadata, tags=excluded.tags, tag_ids=excluded.tag_ids,
  collection_ids=excluded.collection_ids, modified=excluded.modified,
  is_deleted=excluded.is_deleted`

	_, err = s.db.ExecContext(ctx, q,
		d.ID, d.Title, authors, d.Abstract, d.DOI, d.PublishedDate, d.Journal,
		d.Volume, d.Issue, d.Pages, keywords, d.PageCount, d.FileSize,
		d.Thumbnail, d.ReadingProgress, d.CurrentPage, lastOpened,
		d.ReadingTimeSeconds, encodeTime(d.ImportedAt), meta, tags, tagIDs,
		collIDs, encodeTime(d.Modified), boolInt(d.Deleted))
	if err != nil {
		return model.Document{}, false, fmt.Errorf("upsert document: %w", err)
	}
	return d, created, nil
}

// GetDocument returns the row or errs.ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("document: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+documentCols+` FROM documents WHERE id=?`, id)
	d, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListDocuments returns all rows, optionally excluding soft-deleted ones.
func (s *Store) ListDocuments(ctx context.Context, includeDeleted bool) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := `SELECT ` + documentCols + ` FROM documents`
	if !includeDeleted {
		q += ` WHERE is_deleted=0`
	}
	q += ` ORDER BY modified ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DocumentsModifiedSince returns rows with modified strictly greater than since.
func (s *Store) DocumentsModifiedSince(ctx context.Context, since time.Time) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentCols+` FROM documents WHERE modified > ? ORDER BY modified ASC`,
		encodeTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDocument soft-deletes by default. Hard delete removes the row
// (cascading to annotations); purging the binary is the caller's job.
func (s *Store) DeleteDocument(ctx context.Context, id string, hard bool) error {
	if id == "" {
		return fmt.Errorf("document: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRow(ctx, "documents", id, hard)
}

// deleteRow implements soft/hard delete shared by all four tables.
// Caller must hold s.mu.
func (s *Store) deleteRow(ctx context.Context, table, id string, hard bool) error {
	var (
		res sql.Result
		err error
	)
	if hard {
		res, err = s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id=?`, id)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE `+table+` SET is_deleted=1, modified=? WHERE id=?`,
			encodeTime(time.Now()), id)
	}
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
