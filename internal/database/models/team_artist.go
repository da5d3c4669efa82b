package models

import (
	"github.com/google/uuid"
)

// TeamArtist is the join row behind Team.Artists
type TeamArtist struct {
	TeamID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArtistID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for TeamArtist
func (TeamArtist) TableName() string {
	return "team_artists"
}
