package models

import (
	"github.com/google/uuid"
)

// Team is a user's roster of artists. Each user owns at most one team.
type Team struct {
	BaseModel
	Name      string     `json:"name" gorm:"uniqueIndex;not null;size:50"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	CaptainID *uuid.UUID `json:"captainId,omitempty" gorm:"type:uuid"`
	Image     *string    `json:"image,omitempty" gorm:"size:500"`

	// Relationships
	User    *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Artists []Artist     `json:"artists" gorm:"many2many:team_artists;"`
	Leagues []TeamLeague `json:"leagues,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// ArtistIDs returns the ids of the artists currently on the roster
func (t *Team) ArtistIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Artists))
	for i, a := range t.Artists {
		ids[i] = a.ID
	}
	return ids
}
