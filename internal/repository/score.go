package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreDrift is a league score that no longer matches its team's roster
type ScoreDrift struct {
	TeamLeagueID uuid.UUID `json:"teamLeagueId"`
	TeamID       uuid.UUID `json:"teamId"`
	LeagueID     uuid.UUID `json:"leagueId"`
	Stored       int       `json:"stored"`
	Expected     int       `json:"expected"`
}

// ScoreRepository compares cached league scores with the roster aggregate
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

const driftQuery = `
SELECT tl.id AS team_league_id, tl.team_id, tl.league_id, tl.score AS stored,
       COALESCE(SUM(a.total_score), 0) AS expected
FROM team_leagues tl
LEFT JOIN team_artists ta ON ta.team_id = tl.team_id
LEFT JOIN artists a ON a.id = ta.artist_id AND a.deleted_at IS NULL
GROUP BY tl.id, tl.team_id, tl.league_id, tl.score
ORDER BY tl.id`

// FindDrift returns every drifted row and the number of rows checked
func (r *ScoreRepository) FindDrift(ctx context.Context) ([]ScoreDrift, int64, error) {
	var rows []ScoreDrift
	if err := r.db.WithContext(ctx).Raw(driftQuery).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	drifted := make([]ScoreDrift, 0)
	for _, row := range rows {
		if row.Stored != row.Expected {
			drifted = append(drifted, row)
		}
	}
	return drifted, int64(len(rows)), nil
}

const repairQuery = `
UPDATE team_leagues SET score = (
    SELECT COALESCE(SUM(a.total_score), 0)
    FROM team_artists ta
    JOIN artists a ON a.id = ta.artist_id AND a.deleted_at IS NULL
    WHERE ta.team_id = team_leagues.team_id
), updated_at = NOW()
WHERE id = ? AND score = ?`

// Repair recomputes the row from the roster, but only if it still holds the stored value
// seen by FindDrift. A false result means a concurrent write got there first.
func (r *ScoreRepository) Repair(ctx context.Context, drift ScoreDrift) (bool, error) {
	res := r.db.WithContext(ctx).Exec(repairQuery, drift.TeamLeagueID, drift.Stored)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
