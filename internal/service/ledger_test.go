package service_test

import (
	"context"
	"testing"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/mocks"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/service"
	"fantapiazza-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LedgerServiceTestSuite defines the test suite for LedgerService
type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLedger *mocks.MockLedgerRepositoryInterface
	mockRules  *mocks.MockRuleRepositoryInterface
	service    *service.LedgerService
	admin      service.Actor
	ctx        context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLedger = mocks.NewMockLedgerRepositoryInterface(suite.ctrl)
	suite.mockRules = mocks.NewMockRuleRepositoryInterface(suite.ctrl)
	suite.service = service.NewLedgerService(suite.mockLedger, suite.mockRules, validation.New())
	suite.admin = service.Actor{ID: uuid.New(), Role: models.RoleAdmin}
	suite.ctx = context.Background()
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intPtr(v int) *int { return &v }

func (suite *LedgerServiceTestSuite) TestRecordEvent_ExplicitPoints() {
	artistID := uuid.New()

	suite.mockLedger.EXPECT().
		RecordEvent(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.BonusMalusEvent) (int64, error) {
			assert.Equal(suite.T(), artistID, e.ArtistID)
			assert.Equal(suite.T(), -10, e.Points)
			assert.Equal(suite.T(), "Stonato sul ritornello", e.Description)
			assert.Nil(suite.T(), e.RuleID)
			if assert.NotNil(suite.T(), e.CreatedByID) {
				assert.Equal(suite.T(), suite.admin.ID, *e.CreatedByID)
			}
			e.ID = uuid.New()
			return 3, nil
		})

	resp, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID:    artistID,
		Points:      intPtr(-10),
		Description: "  Stonato sul ritornello ",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.LeagueScoresUpdated)
	suite.NotEqual(uuid.Nil, resp.Event.ID)
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_RuleFillsMissingFields() {
	rule := &models.RuleDefinition{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Category:  "DANZA",
		Title:     "Balletto sincronizzato",
		Points:    15,
	}
	suite.mockRules.EXPECT().GetByID(rule.ID).Return(rule, nil)
	suite.mockLedger.EXPECT().
		RecordEvent(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.BonusMalusEvent) (int64, error) {
			assert.Equal(suite.T(), 15, e.Points)
			assert.Equal(suite.T(), "Balletto sincronizzato", e.Description)
			assert.Equal(suite.T(), &rule.ID, e.RuleID)
			return 1, nil
		})

	_, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID: uuid.New(),
		RuleID:   &rule.ID,
	})
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_ExplicitValuesOverrideRule() {
	rule := &models.RuleDefinition{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Bis", Points: 20}
	suite.mockRules.EXPECT().GetByID(rule.ID).Return(rule, nil)
	suite.mockLedger.EXPECT().
		RecordEvent(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.BonusMalusEvent) (int64, error) {
			assert.Equal(suite.T(), 0, e.Points)
			assert.Equal(suite.T(), "Bis concesso a metà", e.Description)
			return 0, nil
		})

	_, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID:    uuid.New(),
		RuleID:      &rule.ID,
		Points:      intPtr(0),
		Description: "Bis concesso a metà",
	})
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_Validation() {
	cases := []struct {
		name string
		req  *service.RecordEventRequest
		want error
	}{
		{
			name: "missing artist",
			req:  &service.RecordEventRequest{Points: intPtr(5), Description: "x"},
			want: apperrors.NewValidationError("artistId", "is required"),
		},
		{
			name: "missing points without rule",
			req:  &service.RecordEventRequest{ArtistID: uuid.New(), Description: "x"},
			want: apperrors.NewValidationError("points", "is required"),
		},
		{
			name: "blank description without rule",
			req:  &service.RecordEventRequest{ArtistID: uuid.New(), Points: intPtr(5), Description: "   "},
			want: apperrors.ErrEmptyEventDescription,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.service.RecordEvent(suite.ctx, suite.admin, tc.req)
			suite.ErrorIs(err, tc.want)
		})
	}
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_UnknownRule() {
	ruleID := uuid.New()
	suite.mockRules.EXPECT().GetByID(ruleID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID: uuid.New(),
		RuleID:   &ruleID,
	})
	suite.ErrorIs(err, apperrors.ErrRuleNotFound)
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_UnknownArtist() {
	suite.mockLedger.EXPECT().RecordEvent(suite.ctx, gomock.Any()).Return(int64(0), gorm.ErrRecordNotFound)

	_, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID:    uuid.New(),
		Points:      intPtr(5),
		Description: "Applausi",
	})
	suite.ErrorIs(err, apperrors.ErrArtistNotFound)
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_RuleDeletedConcurrently() {
	rule := &models.RuleDefinition{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Bis", Points: 20}
	gomock.InOrder(
		suite.mockRules.EXPECT().GetByID(rule.ID).Return(rule, nil),
		suite.mockLedger.EXPECT().RecordEvent(suite.ctx, gomock.Any()).Return(int64(0), gorm.ErrRecordNotFound),
		suite.mockRules.EXPECT().GetByID(rule.ID).Return(nil, gorm.ErrRecordNotFound),
	)

	_, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID: uuid.New(),
		RuleID:   &rule.ID,
	})
	suite.ErrorIs(err, apperrors.ErrRuleNotFound)
}

func (suite *LedgerServiceTestSuite) TestRecordEvent_RepositoryFailure() {
	suite.mockLedger.EXPECT().RecordEvent(suite.ctx, gomock.Any()).Return(int64(0), assert.AnError)

	_, err := suite.service.RecordEvent(suite.ctx, suite.admin, &service.RecordEventRequest{
		ArtistID:    uuid.New(),
		Points:      intPtr(5),
		Description: "Applausi",
	})
	suite.ErrorIs(err, assert.AnError)
	suite.False(apperrors.IsNotFound(err))
}

func (suite *LedgerServiceTestSuite) TestOperationsRequireAdmin() {
	user := service.Actor{ID: uuid.New(), Role: models.RoleUser}
	id := uuid.New()

	_, err := suite.service.RecordEvent(suite.ctx, user, &service.RecordEventRequest{ArtistID: id, Points: intPtr(1), Description: "x"})
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = suite.service.RevertEvent(suite.ctx, user, id)
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = suite.service.DeleteRule(suite.ctx, user, id)
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = suite.service.DeleteArtist(suite.ctx, user, id)
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = suite.service.ListEvents(suite.ctx, user)
	suite.ErrorIs(err, apperrors.ErrAdminRequired)
}

func (suite *LedgerServiceTestSuite) TestRevertEvent() {
	event := &models.BonusMalusEvent{BaseModel: models.BaseModel{ID: uuid.New()}, ArtistID: uuid.New(), Points: 25}
	suite.mockLedger.EXPECT().RevertEvent(suite.ctx, event.ID).Return(event, nil)

	resp, err := suite.service.RevertEvent(suite.ctx, suite.admin, event.ID)
	suite.Require().NoError(err)
	suite.Equal(event, resp.Event)
}

func (suite *LedgerServiceTestSuite) TestRevertEvent_NotFound() {
	id := uuid.New()
	suite.mockLedger.EXPECT().RevertEvent(suite.ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.RevertEvent(suite.ctx, suite.admin, id)
	suite.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (suite *LedgerServiceTestSuite) TestDeleteRule() {
	ruleID := uuid.New()
	suite.mockLedger.EXPECT().RevertRuleAndDelete(suite.ctx, ruleID).Return(&repository.RuleRevertResult{
		RuleID:         ruleID,
		EventsReverted: 2,
		PointsReverted: 30,
	}, nil)

	resp, err := suite.service.DeleteRule(suite.ctx, suite.admin, ruleID)
	suite.Require().NoError(err)
	suite.Equal(2, resp.EventsReverted)
	suite.Equal(30, resp.PointsReverted)
	suite.Contains(resp.Message, "2 events reverted")
}

func (suite *LedgerServiceTestSuite) TestDeleteRule_NotFound() {
	ruleID := uuid.New()
	suite.mockLedger.EXPECT().RevertRuleAndDelete(suite.ctx, ruleID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.DeleteRule(suite.ctx, suite.admin, ruleID)
	suite.ErrorIs(err, apperrors.ErrRuleNotFound)
}

func (suite *LedgerServiceTestSuite) TestDeleteArtist() {
	artistID := uuid.New()
	suite.mockLedger.EXPECT().DeleteArtist(suite.ctx, artistID).Return(&repository.ArtistRemovalResult{
		ArtistID:        artistID,
		TotalScore:      40,
		TeamsAffected:   3,
		CaptainsCleared: 1,
	}, nil)

	resp, err := suite.service.DeleteArtist(suite.ctx, suite.admin, artistID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.TeamsAffected)
	suite.Equal(int64(1), resp.CaptainsCleared)
}

func (suite *LedgerServiceTestSuite) TestDeleteArtist_NotFound() {
	artistID := uuid.New()
	suite.mockLedger.EXPECT().DeleteArtist(suite.ctx, artistID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.DeleteArtist(suite.ctx, suite.admin, artistID)
	suite.ErrorIs(err, apperrors.ErrArtistNotFound)
}

func (suite *LedgerServiceTestSuite) TestListEvents() {
	events := []models.BonusMalusEvent{{Points: 5}, {Points: -3}}
	suite.mockLedger.EXPECT().GetAll().Return(events, nil)

	got, err := suite.service.ListEvents(suite.ctx, suite.admin)
	suite.NoError(err)
	suite.Len(got, 2)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
