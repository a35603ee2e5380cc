package models

import (
	"time"
)

type Author struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       *string   `json:"email"`
	Affiliation *string   `json:"affiliation"`
	Papers      []Paper   `json:"papers,omitempty" gorm:"many2many:paper_authors;"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
