package models

import (
	"time"
)

type Paper struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	PublishedIn string    `json:"publishedIn" gorm:"not null"`
	Year        int       `json:"year" gorm:"not null"`
	Authors     []Author  `json:"authors" gorm:"many2many:paper_authors;"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
