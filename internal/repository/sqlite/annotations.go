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

const annotationCols = `id, document_id, type, color, page, x, y, width, height,
selected_text, note, drawing_data, tags, created, modified, is_deleted`

func scanAnnotation(sc scanner) (model.Annotation, error) {
	var (
		a               model.Annotation
		typ, tags       string
		created, modTxt string
		deleted         int
	)
	err := sc.Scan(&a.ID, &a.DocumentID, &typ, &a.Color, &a.Page,
		&a.Bounds.X, &a.Bounds.Y, &a.Bounds.Width, &a.Bounds.Height,
		&a.SelectedText, &a.Note, &a.DrawingData, &tags, &created, &modTxt, &deleted)
	if err != nil {
		return model.Annotation{}, err
	}
	a.Type = model.AnnotationType(typ)
	if a.Tags, err = decodeList(tags); err != nil {
		return model.Annotation{}, err
	}
	if a.Created, err = decodeTime(created); err != nil {
		return model.Annotation{}, err
	}
	if a.Modified, err = decodeTime(modTxt); err != nil {
		return model.Annotation{}, err
	}
	a.Deleted = deleted != 0
	return a, nil
}

// UpsertAnnotation inserts or fully replaces the row keyed by id.
// The owning document must already exist (FK, cascade on delete).
func (s *Store) UpsertAnnotation(ctx context.Context, a model.Annotation) (model.Annotation, error) {
	if a.ID == "" {
		return model.Annotation{}, fmt.Errorf("annotation: %w", errs.ErrInvalidID)
	}
	if a.DocumentID == "" {
		return model.Annotation{}, fmt.Errorf("annotation document id: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if a.Modified.IsZero() {
		a.Modified = now
	}
	if a.Created.IsZero() {
		a.Created = now
	}

	tags, err := encodeList(a.Tags)
	if err != nil {
		return model.Annotation{}, err
	}

	const q = `
INSERT INTO annotations (` + annotationCols + `)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  document_id=excluded.document_id, type=excluded.type, color=excluded.color,
  page=excluded.page, x=excluded.x, y=excluded.y, width=excluded.width,
  height=excluded.height, selected_text=excluded.selected_text, note=excluded.note,
  drawing_data=excluded.drawing_data, tags=excluded.tags, created=excluded.created,
  modified=excluded.modified, is_deleted=excluded.is_deleted`

	_, err = s.db.ExecContext(ctx, q,
		a.ID, a.DocumentID, string(a.Type), a.Color, a.Page,
		a.Bounds.X, a.Bounds.Y, a.Bounds.Width, a.Bounds.Height,
		a.SelectedText, a.Note, a.DrawingData, tags,
		encodeTime(a.Created), encodeTime(a.Modified), boolInt(a.Deleted))
	if err != nil {
		return model.Annotation{}, fmt.Errorf("upsert annotation: %w", err)
	}
	return a, nil
}

func (s *Store) GetAnnotation(ctx context.Context, id string) (*model.Annotation, error) {
	if id == "" {
		return nil, fmt.Errorf("annotation: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+annotationCols+` FROM annotations WHERE id=?`, id)
	a, err := scanAnnotation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListAnnotations(ctx context.Context, includeDeleted bool) ([]model.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := `SELECT ` + annotationCols + ` FROM annotations`
	if !includeDeleted {
		q += ` WHERE is_deleted=0`
	}
	q += ` ORDER BY modified ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) AnnotationsModifiedSince(ctx context.Context, since time.Time) ([]model.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+annotationCols+` FROM annotations WHERE modified > ? ORDER BY modified ASC`,
		encodeTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) DeleteAnnotation(ctx context.Context, id string, hard bool) error {
	if id == "" {
		return fmt.Errorf("annotation: %w", errs.ErrInvalidID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRow(ctx, "annotations", id, hard)
}
