package testutils

import (
	"strings"
	"time"

	"fantapiazza-backend/internal/database/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct {
	faker *gofakeit.Faker
}

// NewUserFactory creates a new UserFactory
func NewUserFactory(faker *gofakeit.Faker) *UserFactory {
	return &UserFactory{faker: faker}
}

// Create creates a verified test User with the USER role
func (f *UserFactory) Create() *models.User {
	base := newBase()
	name := f.faker.Name()
	verified := time.Now()
	return &models.User{
		BaseModel: base,
		// uuid prefix keeps emails unique across a run
		Email:           strings.ToLower(base.ID.String()[:8] + "." + f.faker.Username() + "@test.com"),
		PasswordHash:    "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3hZ0D/z8x2nFGxD9GpV2P1e",
		Name:            &name,
		Role:            models.RoleUser,
		EmailVerifiedAt: &verified,
	}
}

// Admin creates a verified test User with the ADMIN role
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Role = models.RoleAdmin
	return user
}

// ArtistFactory provides methods to create test Artist data
type ArtistFactory struct {
	faker *gofakeit.Faker
}

// NewArtistFactory creates a new ArtistFactory
func NewArtistFactory(faker *gofakeit.Faker) *ArtistFactory {
	return &ArtistFactory{faker: faker}
}

// Create creates a test Artist costing between 5 and 30
func (f *ArtistFactory) Create() *models.Artist {
	return &models.Artist{
		BaseModel: newBase(),
		Name:      f.faker.FirstName() + " " + f.faker.LastName(),
		Cost:      f.faker.Number(5, 30),
	}
}

// WithCost creates a test Artist with the given cost
func (f *ArtistFactory) WithCost(cost int) *models.Artist {
	artist := f.Create()
	artist.Cost = cost
	return artist
}

// Roster creates n artists with the given costs, cycling through them
func (f *ArtistFactory) Roster(n int, costs ...int) []*models.Artist {
	if len(costs) == 0 {
		costs = []int{20}
	}
	artists := make([]*models.Artist, n)
	for i := range artists {
		artists[i] = f.WithCost(costs[i%len(costs)])
	}
	return artists
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	faker *gofakeit.Faker
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory(faker *gofakeit.Faker) *TeamFactory {
	return &TeamFactory{faker: faker}
}

// Create creates a test Team without an owner
func (f *TeamFactory) Create() *models.Team {
	base := newBase()
	return &models.Team{
		BaseModel: base,
		Name:      f.faker.Adjective() + " " + base.ID.String()[:6],
	}
}

// ForUser creates a test Team owned by userID
func (f *TeamFactory) ForUser(userID uuid.UUID) *models.Team {
	team := f.Create()
	team.UserID = userID
	return team
}

// LeagueFactory provides methods to create test League data
type LeagueFactory struct {
	faker *gofakeit.Faker
}

// NewLeagueFactory creates a new LeagueFactory
func NewLeagueFactory(faker *gofakeit.Faker) *LeagueFactory {
	return &LeagueFactory{faker: faker}
}

// Create creates a test League with a unique name
func (f *LeagueFactory) Create() *models.League {
	base := newBase()
	return &models.League{
		BaseModel: base,
		Name:      f.faker.City() + " " + base.ID.String()[:6],
	}
}

// WithName creates a test League with the given name
func (f *LeagueFactory) WithName(name string) *models.League {
	league := f.Create()
	league.Name = name
	return league
}

// RuleFactory provides methods to create test RuleDefinition data
type RuleFactory struct {
	faker *gofakeit.Faker
}

// NewRuleFactory creates a new RuleFactory
func NewRuleFactory(faker *gofakeit.Faker) *RuleFactory {
	return &RuleFactory{faker: faker}
}

// Create creates a test RuleDefinition
func (f *RuleFactory) Create() *models.RuleDefinition {
	return &models.RuleDefinition{
		BaseModel:   newBase(),
		Category:    f.faker.RandomString([]string{"Canto", "Danza", "Tematici", "Piazza", "Malus", "Finale"}),
		Title:       f.faker.Sentence(4),
		Description: f.faker.Sentence(10),
		Points:      f.faker.Number(-20, 30),
	}
}

// WithPoints creates a test RuleDefinition worth the given points
func (f *RuleFactory) WithPoints(points int) *models.RuleDefinition {
	rule := f.Create()
	rule.Points = points
	return rule
}

// EventFactory provides methods to create test BonusMalusEvent data
type EventFactory struct {
	faker *gofakeit.Faker
}

// NewEventFactory creates a new EventFactory
func NewEventFactory(faker *gofakeit.Faker) *EventFactory {
	return &EventFactory{faker: faker}
}

// For creates an unsaved event for the artist; the ID is left for the database
func (f *EventFactory) For(artistID uuid.UUID, points int) *models.BonusMalusEvent {
	return &models.BonusMalusEvent{
		ArtistID:    artistID,
		Points:      points,
		Description: f.faker.Sentence(5),
	}
}

// NewsFactory provides methods to create test News data
type NewsFactory struct {
	faker *gofakeit.Faker
}

// NewNewsFactory creates a new NewsFactory
func NewNewsFactory(faker *gofakeit.Faker) *NewsFactory {
	return &NewsFactory{faker: faker}
}

// Create creates a test News item
func (f *NewsFactory) Create() *models.News {
	return &models.News{
		BaseModel: newBase(),
		Title:     f.faker.Sentence(5),
		Content:   f.faker.Paragraph(2, 3, 12, " "),
	}
}

// SponsorFactory provides methods to create test Sponsor data
type SponsorFactory struct {
	faker *gofakeit.Faker
}

// NewSponsorFactory creates a new SponsorFactory
func NewSponsorFactory(faker *gofakeit.Faker) *SponsorFactory {
	return &SponsorFactory{faker: faker}
}

// Create creates a test Sponsor
func (f *SponsorFactory) Create() *models.Sponsor {
	return &models.Sponsor{
		BaseModel: newBase(),
		Name:      f.faker.Company(),
		LogoURL:   f.faker.URL() + "/logo.png",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Artist  *ArtistFactory
	Team    *TeamFactory
	League  *LeagueFactory
	Rule    *RuleFactory
	Event   *EventFactory
	News    *NewsFactory
	Sponsor *SponsorFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized.
// An optional seed makes the generated data reproducible.
func NewFactorySet(seed ...uint64) *FactorySet {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = uint64(time.Now().UnixNano())
	}
	faker := gofakeit.New(s)

	return &FactorySet{
		User:    NewUserFactory(faker),
		Artist:  NewArtistFactory(faker),
		Team:    NewTeamFactory(faker),
		League:  NewLeagueFactory(faker),
		Rule:    NewRuleFactory(faker),
		Event:   NewEventFactory(faker),
		News:    NewNewsFactory(faker),
		Sponsor: NewSponsorFactory(faker),
	}
}
