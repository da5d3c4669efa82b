package repository

import (
	"context"

	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeagueRepository handles database operations for leagues
type LeagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new league repository
func NewLeagueRepository(db *gorm.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// rosterScore sums the live artists of every team; teams without artists score 0
type rosterScore struct {
	TeamID uuid.UUID
	Score  int
}

// CreateAndEnroll creates the league and enrols every existing team with the current
// total of its roster. It returns the number of teams enrolled.
func (r *LeagueRepository) CreateAndEnroll(ctx context.Context, league *models.League) (int64, error) {
	var enrolled int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEnrollment(tx); err != nil {
			return err
		}

		// freeze every rostered artist so no event slips between the sum and the insert
		rostered := tx.Model(&models.TeamArtist{}).Select("artist_id")
		var artists []models.Artist
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
			Where("id IN (?)", rostered).
			Order("id").
			Find(&artists).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(league).Error; err != nil {
			return err
		}

		var scores []rosterScore
		if err := tx.Model(&models.Team{}).
			Select("teams.id AS team_id, COALESCE(SUM(artists.total_score), 0) AS score").
			Joins("LEFT JOIN team_artists ON team_artists.team_id = teams.id").
			Joins("LEFT JOIN artists ON artists.id = team_artists.artist_id AND artists.deleted_at IS NULL").
			Group("teams.id").
			Scan(&scores).Error; err != nil {
			return err
		}
		if len(scores) == 0 {
			return nil
		}

		memberships := make([]models.TeamLeague, 0, len(scores))
		for _, s := range scores {
			memberships = append(memberships, models.TeamLeague{TeamID: s.TeamID, LeagueID: league.ID, Score: s.Score})
		}
		res := tx.Omit(clause.Associations).Create(&memberships)
		if res.Error != nil {
			return res.Error
		}
		enrolled = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return enrolled, nil
}

// GetByName retrieves a league by name
func (r *LeagueRepository) GetByName(name string) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetAll retrieves all leagues ordered by name
func (r *LeagueRepository) GetAll() ([]models.League, error) {
	var leagues []models.League
	if err := r.db.Order("name ASC").Find(&leagues).Error; err != nil {
		return nil, err
	}
	return leagues, nil
}

// GetLeaderboards retrieves every league with its teams ranked by score
func (r *LeagueRepository) GetLeaderboards() ([]models.League, error) {
	var leagues []models.League
	err := r.db.
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_leagues.score DESC").Order("team_leagues.created_at ASC")
		}).
		Preload("Teams.Team").
		Order("created_at ASC").
		Find(&leagues).Error
	if err != nil {
		return nil, err
	}
	return leagues, nil
}
