package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
)

const tagCols = `id, name, color, usage_count, document_ids, modified, is_deleted`

func scanTag(sc scanner) (model.Tag, error) {
	var (
		t       model.Tag
		docIDs  string
		modTxt  string
		deleted int
	)
	err := sc.Scan(&t.ID, &t.Name, &t.Color, &t.UsageCount, &docIDs, &modTxt, &deleted)
	if err != nil {
		return model.Tag{}, err
	}
	if t.DocumentIDs, err = decodeList(docIDs); err != nil {
		return model.Tag{}, err
	}
	if t.Modified, err = decodeTime(modTxt); err != nil {
		return model.Tag{}, err
	}
	t.Deleted = deleted != 0
	return t, nil
}

// UpsertTag inserts or fully replaces the row keyed by id. Names are
// normalized to lower case.
func (s *Store) UpsertTag(ctx context.Context, t model.Tag) (model.Tag, error) {
	if t.ID == "" {
		return model.Tag{}, fmt.Errorf("tag: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Name = strings.ToLower(strings.TrimSpace(t.Name))
	if t.Modified.IsZero() {
		t.Modified = time.Now().UTC().Truncate(time.Millisecond)
	}

	docIDs, err := encodeList(t.DocumentIDs)
	if err != nil {
		return model.Tag{}, err
	}

	const q = `
INSERT INTO tags (` + tagCols + `)
VALUES (?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name, color=excluded.color, usage_count=excluded.usage_count,
  document_ids=excluded.document_ids, modified=excluded.modified,
  is_deleted=excluded.is_deleted`

	_, err = s.db.ExecContext(ctx, q,
		t.ID, t.Name, t.Color, t.UsageCount, docIDs, encodeTime(t.Modified), boolInt(t.Deleted))
	if err != nil {
		return model.Tag{}, fmt.Errorf("upsert tag: %w", err)
	}
	return t, nil
}

func (s *Store) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	if id == "" {
		return nil, fmt.Errorf("tag: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+tagCols+` FROM tags WHERE id=?`, id)
	t, err := scanTag(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTags(ctx context.Context, includeDeleted bool) ([]model.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := `SELECT ` + tagCols + ` FROM tags`
	if !includeDeleted {
		q += ` WHERE is_deleted=0`
	}
	q += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) TagsModifiedSince(ctx context.Context, since time.Time) ([]model.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+tagCols+` FROM tags WHERE modified > ? ORDER BY modified ASC`,
		encodeTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) DeleteTag(ctx context.Context, id string, hard bool) error {
	if id == "" {
		return fmt.Errorf("tag: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRow(ctx, "tags", id, hard)
}
