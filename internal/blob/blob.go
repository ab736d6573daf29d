// Package blob stores PDF binaries keyed by document id.
package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/paperdock/librarysync/internal/errs"
)

// Store persists binary content by document id. Implementations must
// validate the id before touching any backend.
type Store interface {
	Save(ctx context.Context, id string, data []byte) error
	// Read returns the full content or errs.ErrNotFound.
	Read(ctx context.Context, id string) ([]byte, error)
	// Delete reports whether a binary existed for the id.
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	// Size returns the content length in bytes or errs.ErrNotFound.
	Size(ctx context.Context, id string) (int64, error)
}

// Digest returns the lowercase hex SHA-256 of content. Used both for
// upload integrity checks and download metadata.
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// ValidateID rejects empty identifiers and anything that could escape
// the storage root, regardless of how the identifier was sourced.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("blob id empty: %w", errs.ErrInvalidID)
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("blob id %q: %w", id, errs.ErrInvalidID)
	}
	return nil
}
