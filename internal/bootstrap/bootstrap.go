// Package bootstrap wires configuration, storage, services and HTTP routing
// together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/tanvir/intakeform/internal/app/controllers"
	appMigrations "github.com/tanvir/intakeform/internal/app/migrations"
	appRepos "github.com/tanvir/intakeform/internal/app/repositories"
	appRoutes "github.com/tanvir/intakeform/internal/app/routes"
	appServices "github.com/tanvir/intakeform/internal/app/services"
	"github.com/tanvir/intakeform/internal/config"
	"github.com/tanvir/intakeform/internal/db"
	appMiddleware "github.com/tanvir/intakeform/internal/middleware"
	pkgAuth "github.com/tanvir/intakeform/internal/pkg/auth"
	"github.com/tanvir/intakeform/internal/pkg/helpers"
	"github.com/tanvir/intakeform/internal/pkg/logger"
	pkgValidation "github.com/tanvir/intakeform/internal/pkg/validation"
	"github.com/tanvir/intakeform/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SubmissionService    *appServices.SubmissionService
	AuthService          *appServices.AuthService
	UserService          *appServices.UserService
	CatalogService       *appServices.CatalogService
	ComplaintService     *appServices.ComplaintService
	SubmissionController *appControllers.SubmissionController
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CatalogController    *appControllers.CatalogController
	ComplaintController  *appControllers.ComplaintController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env file is convenient in development; absence is fine.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	repos := appRepos.NewRepositories(dbPool)
	if err := seed.CreateDefaultData(context.Background(), repos, cfg, lgr); err != nil {
		// A missing seed should not prevent the intake form from serving.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 0),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 0),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.SubmissionService = appServices.NewSubmissionService(deps.Repos.SubmissionRepository, deps.Repos.CatalogRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminUserRepository, deps.Repos.TokenRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.AdminUserRepository)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CatalogRepository)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository)

	deps.SubmissionController = appControllers.NewSubmissionController(deps.SubmissionService, logger.WithField("component", "submissions"))
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, logger.WithField("component", "auth"))
	deps.UserController = appControllers.NewUserController(deps.UserService, logger.WithField("component", "users"))
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService, logger.WithField("component", "catalog"))
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService, logger.WithField("component", "complaints"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// registerCustomValidators adds the intake-specific binding tags to Gin's
// validator engine.
func registerCustomValidators(lgr zerolog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		lgr.Warn().Msg("Could not access validator engine, custom binding tags disabled")
		return
	}

	_ = v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return pkgValidation.ValidateStudentID(fl.Field().String())
	})
	_ = v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return pkgValidation.ValidatePhoneNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("aliasemail", func(fl validator.FieldLevel) bool {
		return pkgValidation.ValidateAliasEmail(fl.Field().String())
	})
}

// SetupRouter builds the Gin engine with all routes attached.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	registerCustomValidators(lgr)

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.SubmissionController,
		deps.AuthController,
		deps.UserController,
		deps.CatalogController,
		deps.ComplaintController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
