package models

import (
	"github.com/google/uuid"
)

// TeamLeague is a team's membership in a league.
// Score caches the sum of the total scores of the team's current artists.
type TeamLeague struct {
	BaseModel
	TeamID   uuid.UUID `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_team_league"`
	LeagueID uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;uniqueIndex:idx_team_league;index"`
	Score    int       `json:"score" gorm:"not null;default:0"`

	Team   *Team   `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	League *League `json:"league,omitempty" gorm:"foreignKey:LeagueID"`
}

// TableName returns the table name for TeamLeague
func (TeamLeague) TableName() string {
	return "team_leagues"
}
