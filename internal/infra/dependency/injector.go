// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sales-tracker/backend/config"
	"github.com/sales-tracker/backend/internal/application/usecase/account"
	"github.com/sales-tracker/backend/internal/application/usecase/category"
	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sales-tracker/backend/internal/application/usecase/expense"
	"github.com/sales-tracker/backend/internal/application/usecase/product"
	"github.com/sales-tracker/backend/internal/application/usecase/refund"
	"github.com/sales-tracker/backend/internal/application/usecase/sale"
	"github.com/sales-tracker/backend/internal/application/usecase/webhook"
	"github.com/sales-tracker/backend/internal/infra/cache"
	database "github.com/sales-tracker/backend/internal/infra/db"
	"github.com/sales-tracker/backend/internal/infra/server/router"
	"github.com/sales-tracker/backend/internal/integration/adapters"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/sales-tracker/backend/internal/integration/persistence"
)

// GenerationBackendRedis selects the Redis generation counter.
const GenerationBackendRedis = "redis"

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits and generations stay in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	saleRepo := persistence.NewSaleRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	refundRepo := persistence.NewRefundRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)
	recordStore := persistence.NewRecordStore(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	reportExporter := adapters.NewXLSXExporter()

	// Create dashboard use cases
	states := dashboard.NewInMemoryStateStore()
	generations := newGenerationCounter(cfg, redisClient)
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(recordStore, generations, states)
	getDashboardStateUseCase := dashboard.NewGetDashboardStateUseCase(states)
	exportDashboardUseCase := dashboard.NewExportDashboardUseCase(getDashboardUseCase, reportExporter)
	getDataRangeUseCase := dashboard.NewGetDataRangeUseCase(recordStore)

	// Create sale use cases
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, accountRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, accountRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create refund use cases
	listRefundsUseCase := refund.NewListRefundsUseCase(refundRepo)
	createRefundUseCase := refund.NewCreateRefundUseCase(refundRepo)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	createProductUseCase := product.NewCreateProductUseCase(productRepo)

	// Create webhook use cases
	ingestSaleUseCase := webhook.NewIngestSaleUseCase(saleRepo)
	ingestRefundUseCase := webhook.NewIngestRefundUseCase(refundRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool { return database.Ping(db) },
		cacheHealthChecker(redisClient),
	)

	controllers := router.Controllers{
		Health: healthController,
		Dashboard: controller.NewDashboardController(
			getDashboardUseCase,
			getDashboardStateUseCase,
			exportDashboardUseCase,
			getDataRangeUseCase,
			cfg.Dashboard.TopN,
		),
		Sale: controller.NewSaleController(
			listSalesUseCase,
			createSaleUseCase,
			updateSaleUseCase,
			deleteSaleUseCase,
		),
		Expense: controller.NewExpenseController(
			listExpensesUseCase,
			createExpenseUseCase,
			updateExpenseUseCase,
			deleteExpenseUseCase,
		),
		Refund: controller.NewRefundController(
			listRefundsUseCase,
			createRefundUseCase,
		),
		Account: controller.NewAccountController(
			listAccountsUseCase,
			createAccountUseCase,
			updateAccountUseCase,
			deleteAccountUseCase,
		),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
		),
		Product: controller.NewProductController(
			listProductsUseCase,
			createProductUseCase,
		),
		Webhook: controller.NewWebhookController(
			ingestSaleUseCase,
			ingestRefundUseCase,
		),
	}

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	webhookRateLimiter := middleware.NewRateLimiter(
		newRateLimitStore(cfg, redisClient),
		"webhook",
		cfg.Webhook.RateLimitEnabled,
	)

	if cfg.Webhook.Secret == "" {
		slog.Warn("WEBHOOK_SECRET is empty, every webhook call will be rejected")
	}

	// Create router
	r := router.NewRouter(controllers, authMiddleware, webhookRateLimiter, cfg.Webhook.Secret)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}

func newGenerationCounter(cfg *config.Config, redisClient *redis.Client) dashboard.GenerationCounter {
	if cfg.Dashboard.GenerationBackend == GenerationBackendRedis {
		if redisClient != nil {
			return cache.NewGenerationCounter(redisClient)
		}
		slog.Warn("Redis generation backend requested without a Redis connection, using memory")
	}
	return dashboard.NewInMemoryGenerationCounter()
}

func newRateLimitStore(cfg *config.Config, redisClient *redis.Client) middleware.RateLimitStore {
	if redisClient != nil {
		return cache.NewRateLimitStore(redisClient, cfg.Webhook.RateLimit, cfg.Webhook.RateWindow)
	}

	// Use higher rate limits for E2E/test environments to prevent flaky tests
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		return middleware.NewMemoryRateLimitStore(1000, 1*time.Minute)
	}
	return middleware.NewMemoryRateLimitStore(cfg.Webhook.RateLimit, cfg.Webhook.RateWindow)
}

func cacheHealthChecker(redisClient *redis.Client) func() bool {
	if redisClient == nil {
		return nil
	}
	return cache.NewCache(redisClient).HealthCheck
}
