//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"fantapiazza-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogRepositoryTestSuite covers artists, rules, settings, news and sponsors
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	artists  *ArtistRepository
	rules    *RuleRepository
	settings *SettingsRepository
	news     *NewsRepository
	sponsors *SponsorRepository
}

// SetupSuite runs before all tests in the suite
func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.factories = testutils.NewFactorySet()
	suite.artists = NewArtistRepository(db)
	suite.rules = NewRuleRepository(db)
	suite.settings = NewSettingsRepository(db)
	suite.news = NewNewsRepository(db)
	suite.sponsors = NewSponsorRepository(db)
}

// TearDownSuite runs after all tests in the suite
func (suite *CatalogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CatalogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestArtistOrdering tests the price list and leaderboard orderings
func (suite *CatalogRepositoryTestSuite) TestArtistOrdering() {
	cheap := suite.factories.Artist.WithCost(10)
	pricey := suite.factories.Artist.WithCost(30)
	cheap.TotalScore = 50
	suite.Require().NoError(suite.artists.Create(cheap))
	suite.Require().NoError(suite.artists.Create(pricey))

	all, err := suite.artists.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(pricey.ID, all[0].ID)

	board, err := suite.artists.GetLeaderboard()
	suite.Require().NoError(err)
	suite.Require().Len(board, 2)
	suite.Equal(cheap.ID, board[0].ID)
}

// TestArtistUpdateIgnoresTotalScore tests that the ledger-owned column is protected
func (suite *CatalogRepositoryTestSuite) TestArtistUpdateIgnoresTotalScore() {
	artist := suite.factories.Artist.WithCost(10)
	suite.Require().NoError(suite.artists.Create(artist))

	err := suite.artists.Update(artist.ID, map[string]interface{}{
		"name":        "Nuovo Nome",
		"cost":        12,
		"total_score": 999,
	})
	suite.Require().NoError(err)

	saved, err := suite.artists.GetByID(artist.ID)
	suite.Require().NoError(err)
	suite.Equal("Nuovo Nome", saved.Name)
	suite.Equal(12, saved.Cost)
	suite.Zero(saved.TotalScore)

	err = suite.artists.Update(uuid.New(), map[string]interface{}{"cost": 1})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestArtistGetByIDs tests that missing ids are skipped
func (suite *CatalogRepositoryTestSuite) TestArtistGetByIDs() {
	artist := suite.factories.Artist.Create()
	suite.Require().NoError(suite.artists.Create(artist))

	found, err := suite.artists.GetByIDs([]uuid.UUID{artist.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Len(found, 1)
}

// TestRuleOrdering tests category then points ordering
func (suite *CatalogRepositoryTestSuite) TestRuleOrdering() {
	low := suite.factories.Rule.WithPoints(5)
	low.Category = "Canto"
	high := suite.factories.Rule.WithPoints(20)
	high.Category = "Canto"
	malus := suite.factories.Rule.WithPoints(-10)
	malus.Category = "Malus"
	suite.Require().NoError(suite.rules.Create(malus))
	suite.Require().NoError(suite.rules.Create(low))
	suite.Require().NoError(suite.rules.Create(high))

	rules, err := suite.rules.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(rules, 3)
	suite.Equal(high.ID, rules[0].ID)
	suite.Equal(low.ID, rules[1].ID)
	suite.Equal(malus.ID, rules[2].ID)
}

// TestSettingsSingleton tests that Get creates the row once and the deadline round-trips
func (suite *CatalogRepositoryTestSuite) TestSettingsSingleton() {
	first, err := suite.settings.Get()
	suite.Require().NoError(err)
	suite.Nil(first.DraftDeadline)

	second, err := suite.settings.Get()
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)

	deadline := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	_, err = suite.settings.SetDraftDeadline(&deadline)
	suite.Require().NoError(err)

	saved, err := suite.settings.Get()
	suite.Require().NoError(err)
	suite.Require().NotNil(saved.DraftDeadline)
	suite.True(deadline.Equal(*saved.DraftDeadline))

	_, err = suite.settings.SetDraftDeadline(nil)
	suite.Require().NoError(err)
	saved, err = suite.settings.Get()
	suite.Require().NoError(err)
	suite.Nil(saved.DraftDeadline)
}

// TestNewsLatest tests the limit and newest-first ordering
func (suite *CatalogRepositoryTestSuite) TestNewsLatest() {
	var last uuid.UUID
	for i := 0; i < 3; i++ {
		item := suite.factories.News.Create()
		item.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(suite.news.Create(item))
		last = item.ID
	}

	latest, err := suite.news.GetLatest(2)
	suite.Require().NoError(err)
	suite.Require().Len(latest, 2)
	suite.Equal(last, latest[0].ID)

	all, err := suite.news.GetLatest(0)
	suite.Require().NoError(err)
	suite.Len(all, 3)

	suite.Require().NoError(suite.news.Delete(last))
	suite.ErrorIs(suite.news.Delete(last), gorm.ErrRecordNotFound)
}

// TestSponsors tests listing and deleting sponsors
func (suite *CatalogRepositoryTestSuite) TestSponsors() {
	sponsor := suite.factories.Sponsor.Create()
	suite.Require().NoError(suite.sponsors.Create(sponsor))

	all, err := suite.sponsors.GetAll()
	suite.Require().NoError(err)
	suite.Len(all, 1)

	suite.Require().NoError(suite.sponsors.Delete(sponsor.ID))
	suite.ErrorIs(suite.sponsors.Delete(sponsor.ID), gorm.ErrRecordNotFound)
}

// TestCatalogRepositoryTestSuite runs the test suite
func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
