// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/plata-app/backend/config"
	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/application/usecase/auth"
	"github.com/plata-app/backend/internal/application/usecase/budget"
	"github.com/plata-app/backend/internal/application/usecase/category"
	"github.com/plata-app/backend/internal/application/usecase/dashboard"
	"github.com/plata-app/backend/internal/application/usecase/transaction"
	"github.com/plata-app/backend/internal/infra/server/router"
	"github.com/plata-app/backend/internal/integration/adapters"
	"github.com/plata-app/backend/internal/integration/cache"
	"github.com/plata-app/backend/internal/integration/email"
	"github.com/plata-app/backend/internal/integration/entrypoint/controller"
	"github.com/plata-app/backend/internal/integration/entrypoint/middleware"
	"github.com/plata-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	clock := adapters.NewSystemClock()
	dashboardCache := cache.NewDashboardCache(redisClient, cfg.Dashboard.CacheTTL)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		// Without an API key outgoing mail is captured in memory.
		slog.Warn("RESEND_API_KEY not set, using mock email sender")
		emailSender = email.NewMockEmailSender()
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService, clock)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, dashboardCache, clock)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, dashboardCache)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo, dashboardCache, clock)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, clock)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, dashboardCache)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(userRepo)
	updateCategoriesUseCase := category.NewUpdateCategoriesUseCase(userRepo)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, dashboardCache, clock)
	weeklyTrendUseCase := dashboard.NewGetWeeklyTrendUseCase(transactionRepo, dashboardCache, clock)
	budgetOverviewUseCase := dashboard.NewGetBudgetOverviewUseCase(transactionRepo, budgetRepo, dashboardCache, clock)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx).Err() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		updateCategoriesUseCase,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		weeklyTrendUseCase,
		budgetOverviewUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		budgetController,
		categoryController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
