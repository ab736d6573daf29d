package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"time"

	"github.com/paperdock/librarysync/internal/model"
	"github.com/paperdock/librarysync/internal/repository"
)

var _ repository.RecordRepository = (*Store)(nil)

// List- and map-valued attributes are stored as JSON text inside
// relational columns. The encode/decode boundary lives here; everything
// above the repository sees strongly typed values.

func encodeList(v []string) (string, error) {
	if len(v) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(s string) ([]string, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func encodeMap(v map[string]string) (string, error) {
	if len(v) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode map: %w", err)
	}
	return string(b), nil
}

func decodeMap(s string) (map[string]string, error) {
	if s == "" || s == "{}" {
		return nil, nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Counts returns live (non-deleted) row counts per kind.
func (s *Store) Counts(ctx context.Context) (model.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c model.Counts
	for _, q := range []struct {
		table string
		dst   *int64
	}{
		{"documents", &c.Documents},
		{"annotations", &c.Annotations},
		{"collections", &c.Collections},
		{"tags", &c.Tags},
	} {
		row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+q.table+` WHERE is_deleted=0`)
		if err := row.Scan(q.dst); err != nil {
			return model.Counts{}, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return c, nil
}

// PurgeDeletedBefore hard-deletes tombstones older than cutoff across all
// four tables in one transaction.
func (s *Store) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (removed int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if e := tx.Commit(); e != nil {
			err = e
		}
	}()

	ts := encodeTime(cutoff)
	// Annotations first so a purged document row never cascades into a
	// row counted twice.
	for _, table := range []string{"annotations", "documents", "collections", "tags"} {
		res, execErr := tx.ExecContext(ctx,
			`DELETE FROM `+table+` WHERE is_deleted=1 AND modified < ?`, ts)
		if execErr != nil {
			err = fmt.Errorf("purge %s: %w", table, execErr)
			return 0, err
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	return removed, nil
}
