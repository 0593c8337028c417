package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	cursorVersion    = "v1"
)

// Cursor is an opaque keyset position over (created_at, id) descending.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// pageKey is the position of the last row already returned.
type pageKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// EncodeAfterCursor keeps microseconds, the resolution of timestamptz.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%s:%d:%s", cursorVersion, t.UnixMicro(), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "decode cursor"), ErrInvalidCursor)
	}

	parts := strings.SplitN(string(raw), ":", 3)
	if len(parts) != 3 || parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}

	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor id"), ErrInvalidCursor)
	}

	return time.UnixMicro(micros).UTC(), id, nil
}

// position returns nil for the first page.
func (c *Cursor) position() (*pageKey, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	createdAt, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, err
	}
	return &pageKey{CreatedAt: createdAt, ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}

// pageOf trims the look-ahead row fetched with limit+1 and derives the next cursor.
func pageOf[T any](rows []*T, limit int, key func(*T) (time.Time, uuid.UUID)) ([]*T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	createdAt, id := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(createdAt, id)}
}
