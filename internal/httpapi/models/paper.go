package models

import "time"

type Paper struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	PublishedIn string    `json:"publishedIn" gorm:"column:published_in;not null"`
	Year        int       `json:"year" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// association
	Authors []Author `json:"authors,omitempty" gorm:"many2many:paper_authors;"`
}

func (Paper) TableName() string {
	return "papers"
}
