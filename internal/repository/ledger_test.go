//go:build integration
// +build integration

package repository

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"fantapiazza-backend/internal/database/models"
	"fantapiazza-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LedgerRepositoryTestSuite tests the LedgerRepository
type LedgerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LedgerRepository
	factories     *testutils.FactorySet
	fx            *scoreFixture
}

// SetupSuite runs before all tests in the suite
func (suite *LedgerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLedgerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.fx = newScoreFixture(&suite.Suite, suite.baseTestSuite, suite.factories)
}

// TearDownSuite runs after all tests in the suite
func (suite *LedgerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LedgerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LedgerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestRecordEventPropagates checks that points reach the artist and every league of
// every holding team, and nothing else
func (suite *LedgerRepositoryTestSuite) TestRecordEventPropagates() {
	ctx := context.Background()
	general := suite.fx.league()
	friends := suite.fx.league()

	artists := suite.fx.artists(30, 25, 20, 15, 10, 5)
	holder := suite.fx.team(artists[:5])
	other := suite.fx.team(artists[1:])

	event := suite.factories.Event.For(artists[0].ID, 10)
	changed, err := suite.repo.RecordEvent(ctx, event)
	suite.Require().NoError(err)

	suite.Equal(int64(2), changed)
	suite.NotEqual(uuid.Nil, event.ID)
	suite.Equal(10, suite.fx.totalScore(artists[0].ID))
	suite.Equal(10, suite.fx.leagueScore(holder.ID, general.ID))
	suite.Equal(10, suite.fx.leagueScore(holder.ID, friends.ID))
	suite.Equal(0, suite.fx.leagueScore(other.ID, general.ID))
	suite.Equal(0, suite.fx.leagueScore(other.ID, friends.ID))
	suite.fx.assertNoDrift()
}

// TestRecordEventZeroAndNegativePoints checks that malus events subtract and zero is accepted
func (suite *LedgerRepositoryTestSuite) TestRecordEventZeroAndNegativePoints() {
	ctx := context.Background()
	league := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.fx.team(artists)

	_, err := suite.repo.RecordEvent(ctx, suite.factories.Event.For(artists[2].ID, 0))
	suite.Require().NoError(err)
	_, err = suite.repo.RecordEvent(ctx, suite.factories.Event.For(artists[2].ID, -10))
	suite.Require().NoError(err)

	suite.Equal(-10, suite.fx.totalScore(artists[2].ID))
	suite.Equal(-10, suite.fx.leagueScore(team.ID, league.ID))
}

// TestRecordEventUnknownArtist checks that nothing is written for a missing artist
func (suite *LedgerRepositoryTestSuite) TestRecordEventUnknownArtist() {
	_, err := suite.repo.RecordEvent(context.Background(), suite.factories.Event.For(uuid.New(), 10))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	events, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Empty(events)
}

// TestRecordEventDeletedArtist checks that soft-deleted artists no longer score
func (suite *LedgerRepositoryTestSuite) TestRecordEventDeletedArtist() {
	ctx := context.Background()
	artist := suite.fx.artists(10)[0]
	_, err := suite.repo.DeleteArtist(ctx, artist.ID)
	suite.Require().NoError(err)

	_, err = suite.repo.RecordEvent(ctx, suite.factories.Event.For(artist.ID, 10))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestRecordEventUnknownRule checks that a dangling rule reference is rejected
func (suite *LedgerRepositoryTestSuite) TestRecordEventUnknownRule() {
	artist := suite.fx.artists(10)[0]
	event := suite.factories.Event.For(artist.ID, 10)
	ruleID := uuid.New()
	event.RuleID = &ruleID

	_, err := suite.repo.RecordEvent(context.Background(), event)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Equal(0, suite.fx.totalScore(artist.ID))
}

// TestRevertEventRestoresScores checks that revert exactly undoes the event
func (suite *LedgerRepositoryTestSuite) TestRevertEventRestoresScores() {
	ctx := context.Background()
	league := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.fx.team(artists)

	_, err := suite.repo.RecordEvent(ctx, suite.factories.Event.For(artists[1].ID, 7))
	suite.Require().NoError(err)
	event := suite.factories.Event.For(artists[0].ID, 15)
	_, err = suite.repo.RecordEvent(ctx, event)
	suite.Require().NoError(err)
	suite.Equal(22, suite.fx.leagueScore(team.ID, league.ID))

	reverted, err := suite.repo.RevertEvent(ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(15, reverted.Points)

	suite.Equal(0, suite.fx.totalScore(artists[0].ID))
	suite.Equal(7, suite.fx.leagueScore(team.ID, league.ID))
	_, err = suite.repo.GetByID(event.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestRevertEventNotFound checks the missing-event path
func (suite *LedgerRepositoryTestSuite) TestRevertEventNotFound() {
	_, err := suite.repo.RevertEvent(context.Background(), uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestRevertEventUsesCurrentRoster checks that a revert after a roster change hits the
// teams holding the artist now
func (suite *LedgerRepositoryTestSuite) TestRevertEventUsesCurrentRoster() {
	ctx := context.Background()
	league := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20, 20)
	team := suite.fx.team(artists[:5])

	event := suite.factories.Event.For(artists[0].ID, 10)
	_, err := suite.repo.RecordEvent(ctx, event)
	suite.Require().NoError(err)

	// swap the scorer out; the recompute drops its 10 points
	_, err = NewTeamRepository(suite.baseTestSuite.DB).UpdateRoster(ctx, team, idsOf(artists[1:]))
	suite.Require().NoError(err)
	suite.Equal(0, suite.fx.leagueScore(team.ID, league.ID))

	_, err = suite.repo.RevertEvent(ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(0, suite.fx.leagueScore(team.ID, league.ID))
	suite.fx.assertNoDrift()
}

// TestRevertRuleAndDelete checks the rule cascade
func (suite *LedgerRepositoryTestSuite) TestRevertRuleAndDelete() {
	ctx := context.Background()
	league := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.fx.team(artists)

	rule := suite.factories.Rule.WithPoints(5)
	suite.Require().NoError(NewRuleRepository(suite.baseTestSuite.DB).Create(rule))

	for _, artistID := range []uuid.UUID{artists[0].ID, artists[3].ID} {
		event := suite.factories.Event.For(artistID, rule.Points)
		event.RuleID = &rule.ID
		_, err := suite.repo.RecordEvent(ctx, event)
		suite.Require().NoError(err)
	}
	unrelated := suite.factories.Event.For(artists[3].ID, 8)
	_, err := suite.repo.RecordEvent(ctx, unrelated)
	suite.Require().NoError(err)
	suite.Equal(18, suite.fx.leagueScore(team.ID, league.ID))

	result, err := suite.repo.RevertRuleAndDelete(ctx, rule.ID)
	suite.Require().NoError(err)
	suite.Equal(2, result.EventsReverted)
	suite.Equal(10, result.PointsReverted)

	suite.Equal(0, suite.fx.totalScore(artists[0].ID))
	suite.Equal(8, suite.fx.totalScore(artists[3].ID))
	suite.Equal(8, suite.fx.leagueScore(team.ID, league.ID))

	_, err = NewRuleRepository(suite.baseTestSuite.DB).GetByID(rule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	events, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(unrelated.ID, events[0].ID)
}

// TestRevertRuleAndDeleteNotFound checks the missing-rule path
func (suite *LedgerRepositoryTestSuite) TestRevertRuleAndDeleteNotFound() {
	_, err := suite.repo.RevertRuleAndDelete(context.Background(), uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteArtist checks that removal keeps league scores equal to the remaining roster
func (suite *LedgerRepositoryTestSuite) TestDeleteArtist() {
	ctx := context.Background()
	league := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.fx.team(artists)
	suite.Require().NoError(suite.baseTestSuite.DB.Model(team).Update("captain_id", artists[0].ID).Error)

	_, err := suite.repo.RecordEvent(ctx, suite.factories.Event.For(artists[0].ID, 12))
	suite.Require().NoError(err)
	_, err = suite.repo.RecordEvent(ctx, suite.factories.Event.For(artists[1].ID, 3))
	suite.Require().NoError(err)

	result, err := suite.repo.DeleteArtist(ctx, artists[0].ID)
	suite.Require().NoError(err)
	suite.Equal(12, result.TotalScore)
	suite.Equal(int64(1), result.TeamsAffected)
	suite.Equal(int64(1), result.CaptainsCleared)

	suite.Equal(3, suite.fx.leagueScore(team.ID, league.ID))
	suite.fx.assertNoDrift()

	reloaded, err := NewTeamRepository(suite.baseTestSuite.DB).GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.CaptainID)
	suite.Len(reloaded.Artists, 4)

	_, err = NewArtistRepository(suite.baseTestSuite.DB).GetByID(artists[0].ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// history still resolves the deleted artist
	events, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Len(events, 2)
	for _, e := range events {
		suite.NotNil(e.Artist)
	}
}

// TestConservation runs a random mix of records and reverts and checks every total
// against the surviving events
func (suite *LedgerRepositoryTestSuite) TestConservation() {
	ctx := context.Background()
	suite.fx.league()
	suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20, 10, 10)
	suite.fx.team(artists[:5])
	suite.fx.team(artists[2:])

	rng := rand.New(rand.NewSource(42))
	var live []uuid.UUID
	for i := 0; i < 60; i++ {
		if len(live) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(live))
			_, err := suite.repo.RevertEvent(ctx, live[idx])
			suite.Require().NoError(err)
			live = append(live[:idx], live[idx+1:]...)
			continue
		}
		event := suite.factories.Event.For(artists[rng.Intn(len(artists))].ID, rng.Intn(41)-20)
		_, err := suite.repo.RecordEvent(ctx, event)
		suite.Require().NoError(err)
		live = append(live, event.ID)
	}

	for _, a := range artists {
		suite.Equal(suite.fx.eventSum(a.ID), suite.fx.totalScore(a.ID), "artist %s", a.Name)
	}
	suite.fx.assertNoDrift()
}

// TestConcurrentRecordEvents checks that parallel events on one artist lose no update
func (suite *LedgerRepositoryTestSuite) TestConcurrentRecordEvents() {
	ctx := context.Background()
	league := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.fx.team(artists)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repo.RecordEvent(ctx, &models.BonusMalusEvent{
				ArtistID:    artists[0].ID,
				Points:      1,
				Description: "concurrent",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.NoError(err)
	}

	suite.Equal(workers, suite.fx.totalScore(artists[0].ID))
	suite.Equal(workers, suite.fx.leagueScore(team.ID, league.ID))
}

// TestGetAllNewestFirst checks the console feed ordering and preloads
func (suite *LedgerRepositoryTestSuite) TestGetAllNewestFirst() {
	ctx := context.Background()
	artist := suite.fx.artists(10)[0]
	admin := suite.factories.User.Admin()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(admin))

	first := suite.factories.Event.For(artist.ID, 1)
	first.CreatedByID = &admin.ID
	_, err := suite.repo.RecordEvent(ctx, first)
	suite.Require().NoError(err)
	second := suite.factories.Event.For(artist.ID, 2)
	_, err = suite.repo.RecordEvent(ctx, second)
	suite.Require().NoError(err)

	events, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal(second.ID, events[0].ID)
	suite.Require().NotNil(events[1].CreatedBy)
	suite.Equal(admin.Email, events[1].CreatedBy.Email)
	suite.Equal(artist.Name, events[0].Artist.Name)
}

// TestLedgerRepositoryTestSuite runs the test suite
func TestLedgerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}
