package models

import "time"

type Author struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;index"`
	Email       *string   `json:"email"`
	Affiliation *string   `json:"affiliation"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// back-relation, shared join table with Paper
	Papers []Paper `json:"papers,omitempty" gorm:"many2many:paper_authors;"`
}

func (Author) TableName() string {
	return "authors"
}
