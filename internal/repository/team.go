package repository

import (
	"context"

	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Order("artists.cost DESC")
		}).
		Preload("Leagues.League")
}

// GetByID retrieves a team with owner, artists and league scores
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.withDetails(r.db).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByUserID retrieves the team owned by a user
func (r *TeamRepository) GetByUserID(userID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.withDetails(r.db).First(&team, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves every team with owner, artists and league scores
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	if err := r.withDetails(r.db).Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// CreateWithRoster creates the team, its roster and one membership per existing league.
// Every membership starts at the current sum of the roster's total scores, which is
// returned. gorm.ErrRecordNotFound means an artist vanished after validation.
func (r *TeamRepository) CreateWithRoster(ctx context.Context, team *models.Team, artistIDs []uuid.UUID) (int, error) {
	var score int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEnrollment(tx); err != nil {
			return err
		}

		artists, err := lockActiveArtistsForShare(tx, artistIDs)
		if err != nil {
			return err
		}
		if len(artists) != len(sortedIDs(artistIDs)) {
			return gorm.ErrRecordNotFound
		}
		score = sumTotals(artists)

		if err := tx.Omit(clause.Associations).Create(team).Error; err != nil {
			return err
		}

		if err := insertRoster(tx, team.ID, artists); err != nil {
			return err
		}

		var leagueIDs []uuid.UUID
		if err := tx.Model(&models.League{}).Pluck("id", &leagueIDs).Error; err != nil {
			return err
		}
		if len(leagueIDs) == 0 {
			return nil
		}
		memberships := make([]models.TeamLeague, len(leagueIDs))
		for i, leagueID := range leagueIDs {
			memberships[i] = models.TeamLeague{TeamID: team.ID, LeagueID: leagueID, Score: score}
		}
		return tx.Omit(clause.Associations).Create(&memberships).Error
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}

// UpdateRoster saves name, captain and image, replaces the roster, and overwrites every
// league score of the team with the new roster's total. Memberships for leagues created
// after the team are added. The new score is returned.
func (r *TeamRepository) UpdateRoster(ctx context.Context, team *models.Team, artistIDs []uuid.UUID) (int, error) {
	var score int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Team
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			First(&current, "id = ?", team.ID).Error; err != nil {
			return err
		}

		// lock outgoing artists too, so an event on one of them cannot land on this
		// team after the roster change
		var oldIDs []uuid.UUID
		if err := tx.Model(&models.TeamArtist{}).Where("team_id = ?", team.ID).
			Pluck("artist_id", &oldIDs).Error; err != nil {
			return err
		}
		if _, err := lockActiveArtistsForShare(tx, append(oldIDs, artistIDs...)); err != nil {
			return err
		}

		var artists []models.Artist
		if err := tx.Where("id IN ?", sortedIDs(artistIDs)).Find(&artists).Error; err != nil {
			return err
		}
		if len(artists) != len(sortedIDs(artistIDs)) {
			return gorm.ErrRecordNotFound
		}
		score = sumTotals(artists)

		if err := tx.Model(&current).Updates(map[string]interface{}{
			"name":       team.Name,
			"captain_id": team.CaptainID,
			"image":      team.Image,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamArtist{}).Error; err != nil {
			return err
		}
		if err := insertRoster(tx, team.ID, artists); err != nil {
			return err
		}

		if err := tx.Model(&models.TeamLeague{}).
			Where("team_id = ?", team.ID).
			Update("score", score).Error; err != nil {
			return err
		}

		missing := tx.Model(&models.TeamLeague{}).Select("league_id").Where("team_id = ?", team.ID)
		var leagueIDs []uuid.UUID
		if err := tx.Model(&models.League{}).Where("id NOT IN (?)", missing).
			Pluck("id", &leagueIDs).Error; err != nil {
			return err
		}
		for _, leagueID := range leagueIDs {
			membership := models.TeamLeague{TeamID: team.ID, LeagueID: leagueID, Score: score}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Omit(clause.Associations).Create(&membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}

func insertRoster(tx *gorm.DB, teamID uuid.UUID, artists []models.Artist) error {
	rows := make([]models.TeamArtist, len(artists))
	for i, a := range artists {
		rows[i] = models.TeamArtist{TeamID: teamID, ArtistID: a.ID}
	}
	return tx.Create(&rows).Error
}
