//go:build integration
// +build integration

package repository

import (
	"context"

	"fantapiazza-backend/internal/database/models"
	"fantapiazza-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// scoreFixture seeds artists, leagues and teams through the real repositories
type scoreFixture struct {
	s         *suite.Suite
	base      *testutils.BaseTestSuite
	factories *testutils.FactorySet
}

func newScoreFixture(s *suite.Suite, base *testutils.BaseTestSuite, factories *testutils.FactorySet) *scoreFixture {
	return &scoreFixture{s: s, base: base, factories: factories}
}

func (f *scoreFixture) require() *require.Assertions {
	return f.s.Require()
}

func (f *scoreFixture) artists(costs ...int) []*models.Artist {
	artists := make([]*models.Artist, len(costs))
	repo := NewArtistRepository(f.base.DB)
	for i, cost := range costs {
		artists[i] = f.factories.Artist.WithCost(cost)
		f.require().NoError(repo.Create(artists[i]))
	}
	return artists
}

func (f *scoreFixture) league() *models.League {
	league := f.factories.League.Create()
	_, err := NewLeagueRepository(f.base.DB).CreateAndEnroll(context.Background(), league)
	f.require().NoError(err)
	return league
}

func (f *scoreFixture) user() *models.User {
	user := f.factories.User.Create()
	f.require().NoError(NewUserRepository(f.base.DB).Create(user))
	return user
}

func (f *scoreFixture) team(roster []*models.Artist) *models.Team {
	team := f.factories.Team.ForUser(f.user().ID)
	_, err := NewTeamRepository(f.base.DB).CreateWithRoster(context.Background(), team, idsOf(roster))
	f.require().NoError(err)
	return team
}

func (f *scoreFixture) totalScore(artistID uuid.UUID) int {
	var artist models.Artist
	f.require().NoError(f.base.DB.Unscoped().First(&artist, "id = ?", artistID).Error)
	return artist.TotalScore
}

func (f *scoreFixture) leagueScore(teamID, leagueID uuid.UUID) int {
	var row models.TeamLeague
	f.require().NoError(f.base.DB.First(&row, "team_id = ? AND league_id = ?", teamID, leagueID).Error)
	return row.Score
}

// eventSum is the sum of recorded points for the artist
func (f *scoreFixture) eventSum(artistID uuid.UUID) int {
	var sum int
	f.require().NoError(f.base.DB.Model(&models.BonusMalusEvent{}).
		Select("COALESCE(SUM(points), 0)").
		Where("artist_id = ?", artistID).
		Scan(&sum).Error)
	return sum
}

// assertNoDrift checks that every league score equals its roster aggregate
func (f *scoreFixture) assertNoDrift() {
	drift, _, err := NewScoreRepository(f.base.DB).FindDrift(context.Background())
	f.require().NoError(err)
	f.require().Empty(drift)
}

func idsOf(artists []*models.Artist) []uuid.UUID {
	ids := make([]uuid.UUID, len(artists))
	for i, a := range artists {
		ids[i] = a.ID
	}
	return ids
}
