package service_test

import (
	"context"
	"testing"
	"time"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/mocks"
	"fantapiazza-backend/internal/service"
	"fantapiazza-backend/internal/testutils"
	"fantapiazza-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeams    *mocks.MockTeamRepositoryInterface
	mockArtists  *mocks.MockArtistRepositoryInterface
	mockSettings *mocks.MockSettingsRepositoryInterface
	service      *service.TeamService
	factories    *testutils.FactorySet
	now          time.Time
	userID       uuid.UUID
	ctx          context.Context
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockArtists = mocks.NewMockArtistRepositoryInterface(suite.ctrl)
	suite.mockSettings = mocks.NewMockSettingsRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet(42)
	suite.now = time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)
	suite.userID = uuid.New()
	suite.ctx = context.Background()

	suite.service = service.NewTeamService(
		suite.mockTeams,
		suite.mockArtists,
		suite.mockSettings,
		validation.New(),
		service.DefaultTeamRules,
	).WithClock(func() time.Time { return suite.now })
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// roster builds five artists with the given costs and the matching request
func (suite *TeamServiceTestSuite) roster(costs ...int) ([]models.Artist, *service.TeamRequest) {
	artists := make([]models.Artist, len(costs))
	ids := make([]uuid.UUID, len(costs))
	for i, cost := range costs {
		artists[i] = *suite.factories.Artist.WithCost(cost)
		ids[i] = artists[i].ID
	}
	return artists, &service.TeamRequest{TeamName: "I Bardi", ArtistIDs: ids}
}

func (suite *TeamServiceTestSuite) openDraft() {
	suite.mockSettings.EXPECT().Get().Return(&models.SystemSettings{}, nil)
}

func (suite *TeamServiceTestSuite) expectArtists(artists []models.Artist) {
	suite.mockArtists.EXPECT().GetByIDs(gomock.Any()).Return(artists, nil)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_BudgetExactlyMet() {
	artists, req := suite.roster(30, 25, 20, 15, 10)
	captain := artists[0].ID
	req.CaptainID = &captain

	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().GetByName("I Bardi").Return(nil, gorm.ErrRecordNotFound)

	teamID := uuid.New()
	suite.mockTeams.EXPECT().
		CreateWithRoster(suite.ctx, gomock.Any(), req.ArtistIDs).
		DoAndReturn(func(_ context.Context, team *models.Team, _ []uuid.UUID) (int, error) {
			assert.Equal(suite.T(), suite.userID, team.UserID)
			assert.Equal(suite.T(), &captain, team.CaptainID)
			team.ID = teamID
			return 0, nil
		})
	suite.mockTeams.EXPECT().GetByID(teamID).Return(&models.Team{
		BaseModel: models.BaseModel{ID: teamID},
		Name:      "I Bardi",
		UserID:    suite.userID,
		CaptainID: &captain,
		Artists:   artists,
		Leagues: []models.TeamLeague{{
			LeagueID: uuid.New(),
			League:   &models.League{Name: "Generale"},
		}},
	}, nil)

	resp, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(teamID, resp.ID)
	suite.Equal(100, resp.TotalCost)
	suite.Len(resp.Artists, 5)
	suite.Require().Len(resp.Leagues, 1)
	suite.Equal("Generale", resp.Leagues[0].LeagueName)
	suite.Equal(0, resp.Leagues[0].Score)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_BudgetExceededByOne() {
	artists, req := suite.roster(30, 25, 20, 15, 11)
	suite.openDraft()
	suite.expectArtists(artists)

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrBudgetExceeded)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_WrongSize() {
	for _, n := range []int{4, 6} {
		costs := make([]int, n)
		for i := range costs {
			costs[i] = 5
		}
		_, req := suite.roster(costs...)

		_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrWrongTeamSize, "size %d", n)
	}
}

func (suite *TeamServiceTestSuite) TestCreateTeam_DuplicateArtists() {
	_, req := suite.roster(10, 10, 10, 10, 10)
	req.ArtistIDs[4] = req.ArtistIDs[0]

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.NewValidationError("artistIds", "must not contain duplicates"))
}

func (suite *TeamServiceTestSuite) TestCreateTeam_BlankName() {
	_, req := suite.roster(10, 10, 10, 10, 10)
	req.TeamName = "   "

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestCreateTeam_UnknownArtist() {
	artists, req := suite.roster(10, 10, 10, 10, 10)
	suite.openDraft()
	suite.expectArtists(artists[:4])

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrUnknownArtists)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_CaptainOutsideRoster() {
	artists, req := suite.roster(10, 10, 10, 10, 10)
	outsider := uuid.New()
	req.CaptainID = &outsider
	suite.openDraft()
	suite.expectArtists(artists)

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrCaptainNotInTeam)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_DraftDeadline() {
	suite.Run("one second before is open", func() {
		deadline := suite.now.Add(time.Second)
		artists, req := suite.roster(10, 10, 10, 10, 10)
		suite.mockSettings.EXPECT().Get().Return(&models.SystemSettings{DraftDeadline: &deadline}, nil)
		suite.expectArtists(artists)
		suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(&models.Team{}, nil)

		_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrTeamAlreadyExists)
	})

	suite.Run("the deadline instant is open", func() {
		deadline := suite.now
		artists, req := suite.roster(10, 10, 10, 10, 10)
		suite.mockSettings.EXPECT().Get().Return(&models.SystemSettings{DraftDeadline: &deadline}, nil)
		suite.expectArtists(artists)
		suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(&models.Team{}, nil)

		_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrTeamAlreadyExists)
	})

	suite.Run("one second after is closed", func() {
		deadline := suite.now.Add(-time.Second)
		_, req := suite.roster(10, 10, 10, 10, 10)
		suite.mockSettings.EXPECT().Get().Return(&models.SystemSettings{DraftDeadline: &deadline}, nil)

		_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrDraftDeadlinePassed)
		suite.True(apperrors.IsAuthorization(err))
	})
}

func (suite *TeamServiceTestSuite) TestCreateTeam_NameTaken() {
	artists, req := suite.roster(10, 10, 10, 10, 10)
	req.TeamName = " I Bardi "
	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().GetByName("I Bardi").Return(&models.Team{Name: "I Bardi"}, nil)

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrTeamNameTaken)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_ConcurrentInsertConflict() {
	artists, req := suite.roster(10, 10, 10, 10, 10)
	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().GetByName("I Bardi").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().CreateWithRoster(suite.ctx, gomock.Any(), req.ArtistIDs).Return(0, gorm.ErrDuplicatedKey)

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrTeamConflict)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_ArtistDeletedBeforeInsert() {
	artists, req := suite.roster(10, 10, 10, 10, 10)
	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().GetByName("I Bardi").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().CreateWithRoster(suite.ctx, gomock.Any(), req.ArtistIDs).Return(0, gorm.ErrRecordNotFound)

	_, err := suite.service.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrUnknownArtists)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_KeepsOwnName() {
	artists, req := suite.roster(20, 20, 20, 20, 20)
	image := "https://cdn.example.com/old.png"
	existing := &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "I Bardi",
		UserID:    suite.userID,
		Image:     &image,
	}

	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(existing, nil)
	suite.mockTeams.EXPECT().GetByName("I Bardi").Return(existing, nil)
	suite.mockTeams.EXPECT().
		UpdateRoster(suite.ctx, existing, req.ArtistIDs).
		DoAndReturn(func(_ context.Context, team *models.Team, _ []uuid.UUID) (int, error) {
			assert.Equal(suite.T(), &image, team.Image)
			assert.Nil(suite.T(), team.CaptainID)
			return 120, nil
		})
	suite.mockTeams.EXPECT().GetByID(existing.ID).Return(&models.Team{
		BaseModel: existing.BaseModel,
		Name:      "I Bardi",
		Artists:   artists,
		Leagues:   []models.TeamLeague{{LeagueID: uuid.New(), Score: 120}},
	}, nil)

	resp, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
	suite.Require().NoError(err)
	suite.Equal(100, resp.TotalCost)
	suite.Equal(120, resp.Leagues[0].Score)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_NameOwnedByAnotherTeam() {
	artists, req := suite.roster(20, 20, 20, 20, 20)
	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(&models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)
	suite.mockTeams.EXPECT().GetByName("I Bardi").Return(&models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)

	_, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrTeamNameTaken)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_NoTeam() {
	artists, req := suite.roster(20, 20, 20, 20, 20)
	suite.openDraft()
	suite.expectArtists(artists)
	suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_DraftDeadline() {
	suite.Run("one second before is open", func() {
		deadline := suite.now.Add(time.Second)
		artists, req := suite.roster(20, 20, 20, 20, 20)
		existing := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "I Bardi", UserID: suite.userID}
		suite.mockSettings.EXPECT().Get().Return(&models.SystemSettings{DraftDeadline: &deadline}, nil)
		suite.expectArtists(artists)
		suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(existing, nil)
		suite.mockTeams.EXPECT().GetByName("I Bardi").Return(existing, nil)
		suite.mockTeams.EXPECT().UpdateRoster(suite.ctx, existing, req.ArtistIDs).Return(0, nil)
		suite.mockTeams.EXPECT().GetByID(existing.ID).Return(&models.Team{
			BaseModel: existing.BaseModel,
			Name:      "I Bardi",
			Artists:   artists,
		}, nil)

		resp, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
		suite.Require().NoError(err)
		suite.Equal(100, resp.TotalCost)
	})

	suite.Run("one second after is closed", func() {
		deadline := suite.now.Add(-time.Second)
		_, req := suite.roster(20, 20, 20, 20, 20)
		suite.mockSettings.EXPECT().Get().Return(&models.SystemSettings{DraftDeadline: &deadline}, nil)

		_, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrDraftDeadlinePassed)
	})
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_BudgetExceeded() {
	artists, req := suite.roster(30, 25, 20, 15, 11)
	suite.openDraft()
	suite.expectArtists(artists)

	_, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrBudgetExceeded)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_WrongSize() {
	for _, n := range []int{4, 6} {
		costs := make([]int, n)
		for i := range costs {
			costs[i] = 5
		}
		_, req := suite.roster(costs...)

		_, err := suite.service.UpdateTeam(suite.ctx, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrWrongTeamSize, "size %d", n)
		suite.EqualError(err, "validation error: artistIds - a team must have exactly 5 distinct artists")
	}
}

func (suite *TeamServiceTestSuite) TestCreateTeam_ConfiguredSize() {
	svc := service.NewTeamService(
		suite.mockTeams,
		suite.mockArtists,
		suite.mockSettings,
		validation.New(),
		service.TeamRules{Budget: 100, Size: 3},
	)
	_, req := suite.roster(10, 10, 10, 10, 10)

	_, err := svc.CreateTeam(suite.ctx, suite.userID, req)
	suite.ErrorIs(err, apperrors.ErrWrongTeamSize)
	suite.Contains(err.Error(), "exactly 3 distinct artists")
}

func (suite *TeamServiceTestSuite) TestGetMyTeam() {
	suite.Run("no team yet", func() {
		suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(nil, gorm.ErrRecordNotFound)
		resp, err := suite.service.GetMyTeam(suite.ctx, suite.userID)
		suite.NoError(err)
		suite.Nil(resp)
	})

	suite.Run("with owner", func() {
		name := "Mario"
		suite.mockTeams.EXPECT().GetByUserID(suite.userID).Return(&models.Team{
			Name: "I Bardi",
			User: &models.User{BaseModel: models.BaseModel{ID: suite.userID}, Name: &name},
		}, nil)
		resp, err := suite.service.GetMyTeam(suite.ctx, suite.userID)
		suite.Require().NoError(err)
		suite.Require().NotNil(resp.Owner)
		suite.Equal(&name, resp.Owner.Name)
		suite.NotNil(resp.Artists)
	})
}

func (suite *TeamServiceTestSuite) TestGetTeam_NotFound() {
	id := uuid.New()
	suite.mockTeams.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetTeam(suite.ctx, id)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestListTeams() {
	_, err := suite.service.ListTeams(suite.ctx, service.Actor{Role: models.RoleUser})
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	suite.mockTeams.EXPECT().GetAll().Return([]models.Team{{Name: "A"}, {Name: "B"}}, nil)
	teams, err := suite.service.ListTeams(suite.ctx, service.Actor{Role: models.RoleAdmin})
	suite.NoError(err)
	suite.Len(teams, 2)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
