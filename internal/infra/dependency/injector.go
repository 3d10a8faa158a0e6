// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dreamwell/backend/config"
	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/application/usecase/admin"
	"github.com/dreamwell/backend/internal/application/usecase/analytics"
	"github.com/dreamwell/backend/internal/application/usecase/auth"
	"github.com/dreamwell/backend/internal/application/usecase/dream"
	"github.com/dreamwell/backend/internal/application/usecase/mood"
	"github.com/dreamwell/backend/internal/application/usecase/support"
	"github.com/dreamwell/backend/internal/application/usecase/user"
	"github.com/dreamwell/backend/internal/infra/server/router"
	"github.com/dreamwell/backend/internal/integration/adapters"
	"github.com/dreamwell/backend/internal/integration/email"
	"github.com/dreamwell/backend/internal/integration/email/templates"
	"github.com/dreamwell/backend/internal/integration/entrypoint/controller"
	"github.com/dreamwell/backend/internal/integration/entrypoint/middleware"
	"github.com/dreamwell/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	RefreshRepo adapter.RefreshTokenRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	refreshRepo := persistence.NewRefreshTokenRepository(db)
	dreamRepo := persistence.NewDreamRepository(db)
	interpretationRepo := persistence.NewInterpretationRepository(db)
	moodRepo := persistence.NewMoodEntryRepository(db)
	ticketRepo := persistence.NewSupportTicketRepository(db)
	settingsRepo := persistence.NewSystemSettingsRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	interpreter := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	cache := adapters.NewRedisCache(redis.NewClient(redisOpts))

	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth use cases
	signupUseCase := auth.NewSignupUseCase(userRepo, refreshRepo, passwordService, tokenService, emailService, cfg.Email.AppBaseURL, cfg.JWT.RefreshTokenExpiry)
	loginUseCase := auth.NewLoginUseCase(userRepo, refreshRepo, passwordService, tokenService, cfg.JWT.RefreshTokenExpiry)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, refreshRepo, tokenService)
	verifyEmailUseCase := auth.NewVerifyEmailUseCase(userRepo)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService)

	// Profile use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService)
	deleteAccountUseCase := user.NewDeleteAccountUseCase(userRepo, refreshRepo, dreamRepo, moodRepo, ticketRepo, emailQueueRepo)

	// Dream journal use cases
	interpretUseCase := dream.NewInterpretDreamUseCase(dreamRepo, interpretationRepo, interpreter)
	createDreamUseCase := dream.NewCreateDreamUseCase(dreamRepo, interpretUseCase)
	listDreamsUseCase := dream.NewListDreamsUseCase(dreamRepo, interpretationRepo)
	getDreamUseCase := dream.NewGetDreamUseCase(dreamRepo, interpretationRepo)
	updateDreamUseCase := dream.NewUpdateDreamUseCase(dreamRepo)
	deleteDreamUseCase := dream.NewDeleteDreamUseCase(dreamRepo)

	// Mood log use cases
	logMoodUseCase := mood.NewLogMoodUseCase(moodRepo)
	listMoodsUseCase := mood.NewListMoodsUseCase(moodRepo)
	updateMoodUseCase := mood.NewUpdateMoodUseCase(moodRepo)
	deleteMoodUseCase := mood.NewDeleteMoodUseCase(moodRepo)

	// Analytics use cases
	userAnalyticsUseCase := analytics.NewUserAnalyticsUseCase(dreamRepo, interpretationRepo, cache, cfg.Redis.CacheTTL)
	exportDataUseCase := analytics.NewExportDataUseCase(userRepo, dreamRepo, interpretationRepo, moodRepo)
	systemAnalyticsUseCase := analytics.NewSystemAnalyticsUseCase(userRepo, dreamRepo, interpretationRepo, ticketRepo)

	// Support use cases
	createTicketUseCase := support.NewCreateTicketUseCase(ticketRepo)
	listTicketsUseCase := support.NewListTicketsUseCase(ticketRepo)
	manageTicketsUseCase := support.NewManageTicketsUseCase(ticketRepo, userRepo, emailService)

	// Admin use cases
	manageUsersUseCase := admin.NewManageUsersUseCase(userRepo, refreshRepo, dreamRepo, moodRepo)
	flaggedDreamsUseCase := admin.NewFlaggedDreamsUseCase(dreamRepo)
	systemSettingsUseCase := admin.NewSystemSettingsUseCase(settingsRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		signupUseCase,
		loginUseCase,
		refreshTokenUseCase,
		verifyEmailUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
		deleteAccountUseCase,
	)

	dreamController := controller.NewDreamController(
		createDreamUseCase,
		listDreamsUseCase,
		getDreamUseCase,
		updateDreamUseCase,
		deleteDreamUseCase,
		interpretUseCase,
		userAnalyticsUseCase,
	)

	moodController := controller.NewMoodController(
		logMoodUseCase,
		listMoodsUseCase,
		updateMoodUseCase,
		deleteMoodUseCase,
		userAnalyticsUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		userAnalyticsUseCase,
		exportDataUseCase,
	)

	supportController := controller.NewSupportController(
		createTicketUseCase,
		listTicketsUseCase,
	)

	adminController := controller.NewAdminController(
		manageUsersUseCase,
		flaggedDreamsUseCase,
		systemSettingsUseCase,
		systemAnalyticsUseCase,
		manageTicketsUseCase,
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		dreamController,
		moodController,
		analyticsController,
		supportController,
		adminController,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		RefreshRepo: refreshRepo,
	}, nil
}
