package models

import (
	"time"
)

// Document is a shared markdown submission. Rows are immutable once created;
// expiry is enforced by query predicates, never by deletion.
type Document struct {
	ID        string    `gorm:"type:text;primaryKey"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime;not null"`
	ExpiresAt time.Time `gorm:"type:datetime;not null"`
}

// Active reports whether the document is still reachable at the given time.
func (d *Document) Active(now time.Time) bool {
	return now.Before(d.ExpiresAt)
}
