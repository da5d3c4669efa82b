//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"fantapiazza-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
	fx            *scoreFixture
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.fx = newScoreFixture(&suite.Suite, suite.baseTestSuite, suite.factories)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithRosterStartsFromCurrentTotals checks the initial league score
func (suite *TeamRepositoryTestSuite) TestCreateWithRosterStartsFromCurrentTotals() {
	ctx := context.Background()
	general := suite.fx.league()
	friends := suite.fx.league()
	artists := suite.fx.artists(30, 25, 20, 15, 10)

	ledger := NewLedgerRepository(suite.baseTestSuite.DB)
	_, err := ledger.RecordEvent(ctx, suite.factories.Event.For(artists[0].ID, 10))
	suite.Require().NoError(err)
	_, err = ledger.RecordEvent(ctx, suite.factories.Event.For(artists[4].ID, -4))
	suite.Require().NoError(err)

	team := suite.factories.Team.ForUser(suite.fx.user().ID)
	score, err := suite.repo.CreateWithRoster(ctx, team, idsOf(artists))
	suite.Require().NoError(err)
	suite.Equal(6, score)

	suite.Equal(6, suite.fx.leagueScore(team.ID, general.ID))
	suite.Equal(6, suite.fx.leagueScore(team.ID, friends.ID))

	saved, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Len(saved.Artists, 5)
	suite.Len(saved.Leagues, 2)
	suite.Require().NotNil(saved.User)
	// roster is preloaded most expensive first
	suite.Equal(artists[0].ID, saved.Artists[0].ID)
}

// TestCreateWithRosterWithoutLeagues checks that a team can exist before any league
func (suite *TeamRepositoryTestSuite) TestCreateWithRosterWithoutLeagues() {
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.factories.Team.ForUser(suite.fx.user().ID)

	score, err := suite.repo.CreateWithRoster(context.Background(), team, idsOf(artists))
	suite.Require().NoError(err)
	suite.Zero(score)

	saved, err := suite.repo.GetByUserID(team.UserID)
	suite.Require().NoError(err)
	suite.Empty(saved.Leagues)
}

// TestCreateWithRosterMissingArtist checks that nothing is written when an artist vanished
func (suite *TeamRepositoryTestSuite) TestCreateWithRosterMissingArtist() {
	artists := suite.fx.artists(20, 20, 20, 20)
	team := suite.factories.Team.ForUser(suite.fx.user().ID)

	_, err := suite.repo.CreateWithRoster(context.Background(), team, append(idsOf(artists), uuid.New()))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByUserID(team.UserID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateWithRosterDuplicateName checks the unique name constraint
func (suite *TeamRepositoryTestSuite) TestCreateWithRosterDuplicateName() {
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	first := suite.fx.team(artists)

	second := suite.factories.Team.ForUser(suite.fx.user().ID)
	second.Name = first.Name
	_, err := suite.repo.CreateWithRoster(context.Background(), second, idsOf(artists))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateWithRosterSecondTeamForUser checks the one-team-per-user constraint
func (suite *TeamRepositoryTestSuite) TestCreateWithRosterSecondTeamForUser() {
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	first := suite.fx.team(artists)

	second := suite.factories.Team.ForUser(first.UserID)
	_, err := suite.repo.CreateWithRoster(context.Background(), second, idsOf(artists))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestUpdateRosterRecomputesScores checks the full recompute and late league enrolment
func (suite *TeamRepositoryTestSuite) TestUpdateRosterRecomputesScores() {
	ctx := context.Background()
	general := suite.fx.league()
	artists := suite.fx.artists(20, 20, 20, 20, 20, 20)
	team := suite.fx.team(artists[:5])

	ledger := NewLedgerRepository(suite.baseTestSuite.DB)
	_, err := ledger.RecordEvent(ctx, suite.factories.Event.For(artists[0].ID, 10))
	suite.Require().NoError(err)
	_, err = ledger.RecordEvent(ctx, suite.factories.Event.For(artists[5].ID, 4))
	suite.Require().NoError(err)

	// a league without this team's membership row
	late := suite.factories.League.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(late).Error)

	team.Name = "Renamed"
	team.CaptainID = &artists[5].ID
	score, err := suite.repo.UpdateRoster(ctx, team, idsOf(artists[1:]))
	suite.Require().NoError(err)
	suite.Equal(4, score)

	suite.Equal(4, suite.fx.leagueScore(team.ID, general.ID))
	suite.Equal(4, suite.fx.leagueScore(team.ID, late.ID))

	saved, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", saved.Name)
	suite.Equal(artists[5].ID, *saved.CaptainID)
	suite.ElementsMatch(idsOf(artists[1:]), saved.ArtistIDs())
	suite.fx.assertNoDrift()
}

// TestUpdateRosterNameTaken checks that renaming onto another team's name fails atomically
func (suite *TeamRepositoryTestSuite) TestUpdateRosterNameTaken() {
	ctx := context.Background()
	artists := suite.fx.artists(20, 20, 20, 20, 20, 20)
	taken := suite.fx.team(artists[:5])
	team := suite.fx.team(artists[:5])

	team.Name = taken.Name
	_, err := suite.repo.UpdateRoster(ctx, team, idsOf(artists[1:]))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	saved, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch(idsOf(artists[:5]), saved.ArtistIDs())
}

// TestUpdateRosterMissingTeam checks the missing-team path
func (suite *TeamRepositoryTestSuite) TestUpdateRosterMissingTeam() {
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	team := suite.factories.Team.ForUser(uuid.New())

	_, err := suite.repo.UpdateRoster(context.Background(), team, idsOf(artists))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByName tests looking up a team by name
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.fx.team(suite.fx.artists(20, 20, 20, 20, 20))

	found, err := suite.repo.GetByName(team.Name)
	suite.Require().NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByName("nope")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests listing all teams with their owners
func (suite *TeamRepositoryTestSuite) TestGetAll() {
	artists := suite.fx.artists(20, 20, 20, 20, 20)
	suite.fx.team(artists)
	suite.fx.team(artists)

	teams, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Len(teams, 2)
	for _, team := range teams {
		suite.NotNil(team.User)
		suite.Len(team.Artists, 5)
	}
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
