package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chronominerals/minerals-insight/config"
	"github.com/chronominerals/minerals-insight/controllers"
	"github.com/chronominerals/minerals-insight/database"
	"github.com/chronominerals/minerals-insight/dataset"
	"github.com/chronominerals/minerals-insight/repositories"
	"github.com/chronominerals/minerals-insight/routes"
	"github.com/chronominerals/minerals-insight/services"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	config.LoadEnv()

	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set in environment")
	}

	// Credential store: Postgres when configured, in-memory otherwise.
	var userRepo repositories.UserRepository
	if dbURL := config.GetEnv("DATABASE_URL", ""); dbURL != "" {
		db, err := database.Connect(dbURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		userRepo = repositories.NewGormUserRepository(db)
		log.Info().Msg("connected to database")
	} else {
		userRepo = repositories.NewMemoryUserRepository()
		log.Warn().Msg("no DATABASE_URL set, user accounts will not survive restarts")
	}

	authService := services.NewAuthService(userRepo, jwtSecret)
	if config.GetEnv("SEED_DEFAULT_USERS", "true") == "true" {
		if err := authService.SeedDefaultUsers(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed default users")
		}
	}

	// Dataset: load the raw sheet into the in-memory snapshot.
	estimator := dataset.NewEstimator(nil, nil, config.GetEnvFloat("RESERVES_MULTIPLIER", dataset.DefaultReservesMultiplier))
	datasetRepo := repositories.NewDatasetRepository()
	datasetService := services.NewDatasetService(
		datasetRepo,
		estimator,
		config.GetEnv("MINERALS_DATA_FILE", "data/critical_minerals.csv"),
	)
	result := datasetService.Load()
	for _, warning := range result.Warnings {
		log.Warn().Msg(warning)
	}

	analyticsService := services.NewAnalyticsService(datasetRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(router, authService, routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Minerals:  controllers.NewMineralController(datasetRepo, datasetService),
		Analytics: controllers.NewAnalyticsController(analyticsService),
		Users:     controllers.NewUserController(authService),
	})

	port := config.GetEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("minerals-insight starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
