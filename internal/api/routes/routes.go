package routes

import (
	"context"
	"fmt"
	"time"

	"fantapiazza-backend/internal/api/handlers"
	"fantapiazza-backend/internal/api/middleware"
	"fantapiazza-backend/internal/auth"
	"fantapiazza-backend/internal/config"
	"fantapiazza-backend/internal/database/models"
	"fantapiazza-backend/internal/metrics"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/service"
	"fantapiazza-backend/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	reconcileTimeout     = 2 * time.Minute
	rateLimitCleanupTick = 5 * time.Minute
)

// Server is the configured router together with the background jobs it owns
type Server struct {
	Router    *gin.Engine
	Scheduler *service.Scheduler
	limiter   *middleware.RateLimiter
}

// Start launches the reconcile schedule and the rate limiter sweeper.
// The sweeper exits when stop is closed.
func (s *Server) Start(stop <-chan struct{}) {
	if s.Scheduler != nil {
		s.Scheduler.Start()
	}
	if s.limiter != nil {
		s.limiter.StartCleanup(rateLimitCleanupTick, stop)
	}
}

// Stop waits for a running reconcile to finish or ctx to expire
func (s *Server) Stop(ctx context.Context) {
	if s.Scheduler != nil {
		s.Scheduler.Stop(ctx)
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*Server, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.Middleware())

	validator := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	leagueRepo := repository.NewLeagueRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)

	// Initialize services
	notifier := service.NewNotifier(cfg)
	teamRules := service.TeamRules{Budget: cfg.TeamBudget, Size: cfg.TeamSize}

	ledgerService := service.NewLedgerService(ledgerRepo, ruleRepo, validator)
	teamService := service.NewTeamService(teamRepo, artistRepo, settingsRepo, validator, teamRules)
	artistService := service.NewArtistService(artistRepo, userRepo, notifier, validator)
	ruleService := service.NewRuleService(ruleRepo, validator)
	leagueService := service.NewLeagueService(leagueRepo, validator)
	reconcileService := service.NewReconcileService(scoreRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, teamRepo, validator)
	newsService := service.NewNewsService(newsRepo, validator)
	sponsorService := service.NewSponsorService(sponsorRepo, validator)

	scheduler, err := service.NewScheduler(cfg.ReconcileCron, reconcileService, reconcileTimeout)
	if err != nil {
		return nil, err
	}

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo, notifier, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	artistHandler := handlers.NewArtistHandler(artistService, ledgerService)
	bonusMalusHandler := handlers.NewBonusMalusHandler(ledgerService)
	ruleHandler := handlers.NewRuleHandler(ruleService, ledgerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	userHandler := handlers.NewUserHandler(userService)
	newsHandler := handlers.NewNewsHandler(newsService)
	sponsorHandler := handlers.NewSponsorHandler(sponsorService)

	var reports handlers.ReportSource
	if scheduler != nil {
		reports = scheduler
	}
	reconcileHandler := handlers.NewReconcileHandler(reconcileService, reports)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.SanitizeInput())

	var limiter *middleware.RateLimiter
	authGroup := api.Group("/auth")
	{
		throttle := []gin.HandlerFunc{}
		if cfg.AuthRateLimitPerMin > 0 {
			limiter = middleware.NewRateLimiter(cfg.AuthRateLimitPerMin)
			throttle = append(throttle, limiter.Handler())
		}
		authGroup.POST("/register", append(throttle, authHandler.Register)...)
		authGroup.POST("/login", append(throttle, authHandler.Login)...)
		authGroup.GET("/verify", authHandler.Verify)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	v1 := api.Group("/v1")
	{
		// Public catalogue and standings
		v1.GET("/artists", artistHandler.ListArtists)
		v1.GET("/artists/leaderboard", artistHandler.GetLeaderboard)
		v1.GET("/rules", ruleHandler.ListRules)
		v1.GET("/leagues", leagueHandler.ListLeagues)
		v1.GET("/leaderboards", leagueHandler.GetLeaderboards)
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.GET("/news", newsHandler.GetLatest)
		v1.GET("/sponsors", sponsorHandler.ListSponsors)
		v1.GET("/teams/:id", teamHandler.GetTeam)

		// Signed-in users
		user := v1.Group("")
		user.Use(authMiddleware.RequireAuth())
		{
			user.GET("/team", teamHandler.GetMyTeam)
			user.POST("/team", teamHandler.CreateTeam)
			user.PUT("/team", teamHandler.UpdateTeam)

			user.GET("/user/profile", userHandler.GetProfile)
			user.PUT("/user/profile", userHandler.UpdateProfile)
		}

		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleAdmin))
		{
			bonusMalus := admin.Group("/bonus-malus")
			{
				bonusMalus.GET("", bonusMalusHandler.ListEvents)
				bonusMalus.POST("", bonusMalusHandler.RecordEvent)
				bonusMalus.DELETE("/:id", bonusMalusHandler.RevertEvent)
			}

			rules := admin.Group("/rules")
			{
				rules.POST("", ruleHandler.CreateRule)
				rules.PUT("/:id", ruleHandler.UpdateRule)
				rules.DELETE("/:id", ruleHandler.DeleteRule)
			}

			artists := admin.Group("/artists")
			{
				artists.POST("", artistHandler.CreateArtist)
				artists.PUT("/:id", artistHandler.UpdateArtist)
				artists.DELETE("/:id", artistHandler.DeleteArtist)
			}

			admin.POST("/leagues", leagueHandler.CreateLeague)
			admin.PUT("/settings", settingsHandler.UpdateSettings)
			admin.POST("/reconcile", reconcileHandler.RunReconcile)
			admin.GET("/reconcile/last", reconcileHandler.LastReport)
			admin.GET("/users", userHandler.ListUsers)
			admin.GET("/teams", teamHandler.ListTeams)

			news := admin.Group("/news")
			{
				news.GET("", newsHandler.ListNews)
				news.POST("", newsHandler.CreateNews)
				news.PUT("/:id", newsHandler.UpdateNews)
				news.DELETE("/:id", newsHandler.DeleteNews)
			}

			sponsors := admin.Group("/sponsors")
			{
				sponsors.GET("", sponsorHandler.ListSponsors)
				sponsors.POST("", sponsorHandler.CreateSponsor)
				sponsors.DELETE("/:id", sponsorHandler.DeleteSponsor)
			}
		}
	}

	return &Server{
		Router:    router,
		Scheduler: scheduler,
		limiter:   limiter,
	}, nil
}
