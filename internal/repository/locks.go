package repository

import (
	"sort"

	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lock ordering used by every transaction that touches scores:
//
//	rule -> event -> team -> artists (ascending id) -> team_leagues
//
// Enrollment (new team or new league) additionally takes enrollmentLockKey first.
const enrollmentLockKey = "fantapiazza.enrollment"

func lockEnrollment(tx *gorm.DB) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", enrollmentLockKey).Error
}

// lockArtistForUpdate locks one artist row, including soft-deleted ones
func lockArtistForUpdate(tx *gorm.DB, id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	err := tx.Unscoped().
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&artist, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// lockActiveArtistsForShare share-locks the live artists among ids in ascending id order.
// Callers compare the result length with len(ids) to detect missing or deleted artists.
func lockActiveArtistsForShare(tx *gorm.DB, ids []uuid.UUID) ([]models.Artist, error) {
	var artists []models.Artist
	if len(ids) == 0 {
		return artists, nil
	}
	err := tx.
		Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		Where("id IN ?", sortedIDs(ids)).
		Order("id").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// applyArtistDelta adds delta to the artist total and to every league score of the
// teams currently holding the artist. It returns the number of team_leagues rows changed.
func applyArtistDelta(tx *gorm.DB, artistID uuid.UUID, delta int) (int64, error) {
	if err := tx.Unscoped().Model(&models.Artist{}).
		Where("id = ?", artistID).
		Update("total_score", gorm.Expr("total_score + ?", delta)).Error; err != nil {
		return 0, err
	}

	holders := tx.Model(&models.TeamArtist{}).Select("team_id").Where("artist_id = ?", artistID)
	res := tx.Model(&models.TeamLeague{}).
		Where("team_id IN (?)", holders).
		Update("score", gorm.Expr("score + ?", delta))
	return res.RowsAffected, res.Error
}

func sortedIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func sumTotals(artists []models.Artist) int {
	total := 0
	for _, a := range artists {
		total += a.TotalScore
	}
	return total
}
