package models

import (
	"github.com/google/uuid"
)

// News is an announcement shown on the home page
type News struct {
	BaseModel
	Title    string     `json:"title" gorm:"not null;size:200"`
	Content  string     `json:"content" gorm:"type:text;not null"`
	Image    *string    `json:"image,omitempty" gorm:"size:500"`
	AuthorID *uuid.UUID `json:"authorId,omitempty" gorm:"type:uuid"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for News
func (News) TableName() string {
	return "news"
}
