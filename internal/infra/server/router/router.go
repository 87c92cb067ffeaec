// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sales-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	saleController      *controller.SaleController
	expenseController   *controller.ExpenseController
	refundController    *controller.RefundController
	accountController   *controller.AccountController
	categoryController  *controller.CategoryController
	productController   *controller.ProductController
	webhookController   *controller.WebhookController
	authMiddleware      *middleware.AuthMiddleware
	webhookRateLimiter  *middleware.RateLimiter
	webhookSecret       string
}

// Controllers groups the HTTP controllers mounted by the router.
type Controllers struct {
	Health    *controller.HealthController
	Dashboard *controller.DashboardController
	Sale      *controller.SaleController
	Expense   *controller.ExpenseController
	Refund    *controller.RefundController
	Account   *controller.AccountController
	Category  *controller.CategoryController
	Product   *controller.ProductController
	Webhook   *controller.WebhookController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	authMiddleware *middleware.AuthMiddleware,
	webhookRateLimiter *middleware.RateLimiter,
	webhookSecret string,
) *Router {
	return &Router{
		healthController:    controllers.Health,
		dashboardController: controllers.Dashboard,
		saleController:      controllers.Sale,
		expenseController:   controllers.Expense,
		refundController:    controllers.Refund,
		accountController:   controllers.Account,
		categoryController:  controllers.Category,
		productController:   controllers.Product,
		webhookController:   controllers.Webhook,
		authMiddleware:      authMiddleware,
		webhookRateLimiter:  webhookRateLimiter,
		webhookSecret:       webhookSecret,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Webhook routes (shared secret, rate limited, no bearer token)
		if r.webhookController != nil {
			webhooks := v1.Group("/webhooks")
			if r.webhookRateLimiter != nil {
				webhooks.Use(r.webhookRateLimiter.Middleware())
			}
			webhooks.Use(middleware.WebhookSecret(r.webhookSecret))
			{
				webhooks.POST("/sale", r.webhookController.Sale)
				webhooks.POST("/refund", r.webhookController.Refund)
			}
		}

		if r.authMiddleware == nil {
			return
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.GetDashboard)
				dashboard.GET("/state", r.dashboardController.GetDashboardState)
				dashboard.GET("/export", r.dashboardController.Export)
				dashboard.GET("/data-range", r.dashboardController.GetDataRange)
			}
		}

		// Sale routes (require authentication)
		if r.saleController != nil {
			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate())
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
				sales.PATCH("/:id", r.saleController.Update)
				sales.DELETE("/:id", r.saleController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Refund routes (require authentication)
		if r.refundController != nil {
			refunds := v1.Group("/refunds")
			refunds.Use(r.authMiddleware.Authenticate())
			{
				refunds.GET("", r.refundController.List)
				refunds.POST("", r.refundController.Create)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Product routes (require authentication)
		if r.productController != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
			}
		}
	}
}
