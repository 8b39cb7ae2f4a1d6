// Package app assembles the HTTP router from configuration and a database
// handle.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"investwelth/internal/config"
	_ "investwelth/internal/docs" // registers swagger docs
	"investwelth/internal/handlers"
	"investwelth/internal/middleware"
	"investwelth/internal/services"
	"investwelth/internal/validator"
)

// endpoints is the map served from GET /api.
var endpoints = gin.H{
	"funds": gin.H{
		"list":        "GET /api/funds",
		"overlap":     "GET /api/funds/overlap?fund1=:id&fund2=:id",
		"details":     "GET /api/funds/:id",
		"sectors":     "GET /api/funds/:id/sectors",
		"stocks":      "GET /api/funds/:id/stocks",
		"performance": "GET /api/funds/:id/performance?period=1M&interval=daily",
		"compare":     "GET /api/funds/:id/compare/:compareId",
	},
	"portfolio": gin.H{
		"summary":     "GET /api/portfolio",
		"performance": "GET /api/portfolio/performance?period=1M&interval=daily",
		"sectors":     "GET /api/portfolio/sectors",
		"health":      "GET /api/portfolio/health",
	},
	"investments": gin.H{
		"summary":      "GET /api/investments/summary",
		"list":         "GET /api/investments",
		"transactions": "GET /api/transactions?page=1&page_size=20",
	},
	"users": gin.H{
		"register": "POST /api/users/register",
		"login":    "POST /api/users/login",
		"profile":  "GET|PUT /api/users/profile",
	},
}

// NewRouter wires services, handlers and middleware into a Gin engine.
// HTTP collectors are registered with reg and exposed on /metrics.
func NewRouter(cfg *config.Config, db *gorm.DB, reg *prometheus.Registry) *gin.Engine {
	validator.Register()

	tokens := middleware.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration())
	auditService := services.NewAuditService(db)

	fundHandler := handlers.NewFundHandler(services.NewFundService(db))
	portfolioHandler := handlers.NewPortfolioHandler(
		services.NewPortfolioService(db, services.WithDemoMode(cfg.DemoMode)))
	investmentHandler := handlers.NewInvestmentHandler(services.NewInvestmentService(db))
	authHandler := handlers.NewAuthHandler(services.NewUserService(db), auditService, tokens)
	snapshotHandler := handlers.NewPortfolioSnapshotHandler(services.NewPortfolioSnapshotService(db), auditService)

	metrics := middleware.NewMetrics(reg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorDetails(cfg.ExposeErrorDetails()))
	router.Use(metrics.Handler())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	api.Use(middleware.Timeout(cfg.RequestTimeoutDuration()))

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the InvestWelth API", "endpoints": endpoints})
	})

	funds := api.Group("/funds")
	funds.GET("", fundHandler.ListFunds)
	funds.GET("/overlap", fundHandler.GetFundOverlap)
	funds.GET("/:id", fundHandler.GetFund)
	funds.GET("/:id/sectors", fundHandler.GetFundSectors)
	funds.GET("/:id/stocks", fundHandler.GetFundStocks)
	funds.GET("/:id/performance", fundHandler.GetFundPerformance)
	funds.GET("/:id/compare/:compareId", fundHandler.CompareFunds)

	api.GET("/investments/summary", investmentHandler.GetSummary)
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)

	var demoUserID uint
	if cfg.DemoMode {
		demoUserID = cfg.DemoUserID
	}
	user := api.Group("")
	user.Use(middleware.Authenticate(tokens, demoUserID))

	portfolio := user.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.GET("/performance", portfolioHandler.GetPerformance)
	portfolio.GET("/sectors", portfolioHandler.GetSectorAllocation)
	portfolio.GET("/health", portfolioHandler.GetHealth)

	user.GET("/investments", investmentHandler.GetInvestments)
	user.GET("/transactions", investmentHandler.GetTransactions)
	user.GET("/users/profile", authHandler.GetProfile)
	user.PUT("/users/profile", authHandler.UpdateProfile)

	pipeline := api.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.POST("/snapshots", snapshotHandler.ComputeSnapshots)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
