package models

import (
	"gorm.io/gorm"
)

// Artist is a performer that can be drafted into teams.
// TotalScore is the running sum of the points of every event recorded for the artist.
type Artist struct {
	BaseModel
	Name       string         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Cost       int            `json:"cost" gorm:"not null" validate:"gte=0"`
	TotalScore int            `json:"totalScore" gorm:"not null;default:0"`
	Image      *string        `json:"image,omitempty" gorm:"size:500"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	Events []BonusMalusEvent `json:"events,omitempty" gorm:"foreignKey:ArtistID"`
}

// TableName returns the table name for Artist
func (Artist) TableName() string {
	return "artists"
}
