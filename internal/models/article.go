package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// SummaryLength is the number of leading characters kept in an article summary.
const SummaryLength = 150

// Tags is a list of article tags stored as a JSONB column.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported source type for tags")
	}
}

// ArticleDB represents an article record in the database
type ArticleDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	AuthorID  int64     `json:"authorId" db:"author_id"`    // Owning user, immutable after creation
	Title     string    `json:"title" db:"title"`           // Article title
	Content   string    `json:"content" db:"content"`       // Full article body
	Summary   string    `json:"summary" db:"summary"`       // Derived from content, denormalized
	Category  string    `json:"category" db:"category"`     // Free-form category
	Tags      Tags      `json:"tags" db:"tags"`             // Article tags
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Summarize returns the first SummaryLength characters of content with an
// ellipsis marker. The cut is a plain character slice, not word-aware.
func Summarize(content string) string {
	runes := []rune(content)
	if len(runes) <= SummaryLength {
		return content
	}
	return string(runes[:SummaryLength]) + "..."
}
