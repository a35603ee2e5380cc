package models

import "time"

// PaperAuthor is the join row for the paper<->author many-to-many
// relation. It is kept as an explicit model so the relationship store
// can replace and count links without going through either entity.
type PaperAuthor struct {
	PaperID   uint      `json:"paper_id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
