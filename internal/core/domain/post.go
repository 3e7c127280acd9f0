package domain

import (
	"time"
	"unicode/utf8"
)

// summaryLen is how much of a description the feed shows before cutting off.
const summaryLen = 100

// Post is a publication on the feed. Author is the creator's display
// name, denormalised from the session at creation time; there is no
// foreign key back to the user record. CreatedAt is set once at
// creation and never changes.
type Post struct {
	ID          string    `json:"_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Summary returns the truncated description shown on the feed list.
func (p Post) Summary() string {
	if utf8.RuneCountInString(p.Description) <= summaryLen {
		return p.Description
	}
	runes := []rune(p.Description)
	return string(runes[:summaryLen]) + "..."
}
