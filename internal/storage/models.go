package storage

import "time"

// FAQRecord represents a question/answer entry in the database.
type FAQRecord struct {
	ID        int64
	Question  string
	Answer    string
	Tags      []string // Stored as a JSON array
	Lang      string   // Two-letter language code
	CreatedAt time.Time
	UpdatedAt time.Time
}
