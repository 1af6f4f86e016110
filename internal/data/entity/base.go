package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the audit fields shared by every record. Records are created
// once and never deleted; the only update anywhere is the quote accepted flag.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
