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

const collectionCols = `id, name, type, color, icon, parent_id, document_ids,
smart_filter, notes, sort_order, modified, is_deleted`

func scanCollection(sc scanner) (model.Collection, error) {
	var (
		c           model.Collection
		typ, docIDs string
		modTxt      string
		deleted     int
	)
	err := sc.Scan(&c.ID, &c.Name, &typ, &c.Color, &c.Icon, &c.ParentID,
		&docIDs, &c.SmartFilter, &c.Notes, &c.SortOrder, &modTxt, &deleted)
	if err != nil {
		return model.Collection{}, err
	}
	c.Type = model.CollectionType(typ)
	if c.DocumentIDs, err = decodeList(docIDs); err != nil {
		return model.Collection{}, err
	}
	if c.Modified, err = decodeTime(modTxt); err != nil {
		return model.Collection{}, err
	}
	c.Deleted = deleted != 0
	return c, nil
}

// UpsertCollection inserts or fully replaces the row keyed by id.
func (s *Store) UpsertCollection(ctx context.Context, c model.Collection) (model.Collection, error) {
	if c.ID == "" {
		return model.Collection{}, fmt.Errorf("collection: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Modified.IsZero() {
		c.Modified = time.Now().UTC().Truncate(time.Millisecond)
	}

	docIDs, err := encodeList(c.DocumentIDs)
	if err != nil {
		return model.Collection{}, err
	}

	const q = `
INSERT INTO collections (` + collectionCols + `)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name, type=excluded.type, color=excluded.color, icon=excluded.icon,
  parent_id=excluded.parent_id, document_ids=excluded.document_ids,
  smart_filter=excluded.smart_filter, notes=excluded.notes,
  sort_order=excluded.sort_order, modified=excluded.modified,
  is_deleted=excluded.is_deleted`

	_, err = s.db.ExecContext(ctx, q,
		c.ID, c.Name, string(c.Type), c.Color, c.Icon, c.ParentID, docIDs,
		c.SmartFilter, c.Notes, c.SortOrder, encodeTime(c.Modified), boolInt(c.Deleted))
	if err != nil {
		return model.Collection{}, fmt.Errorf("upsert collection: %w", err)
	}
	return c, nil
}

func (s *Store) GetCollection(ctx context.Context, id string) (*model.Collection, error) {
	if id == "" {
		return nil, fmt.Errorf("collection: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+collectionCols+` FROM collections WHERE id=?`, id)
	c, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCollections(ctx context.Context, includeDeleted bool) ([]model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := `SELECT ` + collectionCols + ` FROM collections`
	if !includeDeleted {
		q += ` WHERE is_deleted=0`
	}
	q += ` ORDER BY sort_order ASC, modified ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) CollectionsModifiedSince(ctx context.Context, since time.Time) ([]model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+collectionCols+` FROM collections WHERE modified > ? ORDER BY modified ASC`,
		encodeTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) DeleteCollection(ctx context.Context, id string, hard bool) error {
	if id == "" {
		return fmt.Errorf("collection: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRow(ctx, "collections", id, hard)
}
