package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fantapiazza-backend/internal/auth"
	"fantapiazza-backend/internal/config"
	"fantapiazza-backend/internal/database"
	"fantapiazza-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type LeagueData struct {
	Name string `yaml:"name"`
}

type ArtistData struct {
	Name  string  `yaml:"name"`
	Cost  int     `yaml:"cost"`
	Image *string `yaml:"image,omitempty"`
}

type RuleData struct {
	Category    string `yaml:"category"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Points      int    `yaml:"points"`
}

type UserData struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	// PasswordEnv names the environment variable holding the initial password
	PasswordEnv string `yaml:"password_env"`
}

// SeedFile is the layout of every YAML file under the data directory.
// A file may carry any subset of the sections.
type SeedFile struct {
	Leagues []LeagueData `yaml:"leagues"`
	Artists []ArtistData `yaml:"artists"`
	Rules   []RuleData   `yaml:"rules"`
	Users   []UserData   `yaml:"users"`
	// PruneLeagues removes leagues that are not listed
	PruneLeagues bool `yaml:"prune_leagues"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" noise while loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func readSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		merged.Leagues = append(merged.Leagues, file.Leagues...)
		merged.Artists = append(merged.Artists, file.Artists...)
		merged.Rules = append(merged.Rules, file.Rules...)
		merged.Users = append(merged.Users, file.Users...)
		merged.PruneLeagues = merged.PruneLeagues || file.PruneLeagues
		return nil
	})
	return merged, err
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed, err := readSeedFiles(dataDir)
	if err != nil {
		return err
	}

	created, err := upsertLeagues(db, seed.Leagues, seed.PruneLeagues)
	if err != nil {
		return fmt.Errorf("failed to load leagues: %w", err)
	}
	log.Printf("📋 Leagues: %d created, %d total", created, len(seed.Leagues))

	created = 0
	for _, a := range seed.Artists {
		ok, err := createArtist(db, a)
		if err != nil {
			return fmt.Errorf("failed to create artist %s: %w", a.Name, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Artists: %d created, %d total", created, len(seed.Artists))

	created = 0
	for _, r := range seed.Rules {
		ok, err := createRule(db, r)
		if err != nil {
			return fmt.Errorf("failed to create rule %s: %w", r.Title, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Rules: %d created, %d total", created, len(seed.Rules))

	created = 0
	for _, u := range seed.Users {
		ok, err := createUser(db, u)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create user %s: %v", u.Email, err)
			continue
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Users: %d created, %d total", created, len(seed.Users))

	return nil
}

func upsertLeagues(db *gorm.DB, leagues []LeagueData, prune bool) (int, error) {
	names := make([]string, 0, len(leagues))
	created := 0
	for _, l := range leagues {
		names = append(names, l.Name)
		var league models.League
		err := db.Where("name = ?", l.Name).First(&league).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if err := db.Create(&models.League{Name: l.Name}).Error; err != nil {
			return created, err
		}
		created++
	}

	if prune && len(names) > 0 {
		res := db.Where("name NOT IN ?", names).Delete(&models.League{})
		if res.Error != nil {
			return created, res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("🗑️  Removed %d unlisted leagues", res.RowsAffected)
		}
	}
	return created, nil
}

// createArtist inserts the artist unless one with the same name exists
func createArtist(db *gorm.DB, data ArtistData) (bool, error) {
	var existing models.Artist
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	artist := &models.Artist{Name: data.Name, Cost: data.Cost, Image: data.Image}
	return true, db.Create(artist).Error
}

func createRule(db *gorm.DB, data RuleData) (bool, error) {
	category := strings.ToUpper(strings.TrimSpace(data.Category))
	var existing models.RuleDefinition
	err := db.Where("category = ? AND title = ?", category, data.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	rule := &models.RuleDefinition{
		Category:    category,
		Title:       data.Title,
		Description: data.Description,
		Points:      data.Points,
	}
	return true, db.Create(rule).Error
}

func createUser(db *gorm.DB, data UserData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	password := os.Getenv(data.PasswordEnv)
	if password == "" {
		return false, fmt.Errorf("%s is not set", data.PasswordEnv)
	}
	hash, err := auth.HashPassword(password, auth.PasswordCost)
	if err != nil {
		return false, err
	}

	role := models.RoleUser
	if strings.EqualFold(data.Role, string(models.RoleAdmin)) {
		role = models.RoleAdmin
	}
	now := time.Now()
	user := &models.User{
		Email:           email,
		PasswordHash:    hash,
		Role:            role,
		EmailVerifiedAt: &now,
	}
	if data.Name != "" {
		user.Name = &data.Name
	}
	return true, db.Create(user).Error
}
