package router

import (
	"strings"
	"time"

	"ranchops/internal/config"
	"ranchops/internal/handler"
	"ranchops/internal/middleware"
	"ranchops/internal/repository"
	"ranchops/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(splitOrigins(cfg.CORSOrigins)))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	healthRepo := repository.NewHealthRecordRepository(db)
	breedingRepo := repository.NewBreedingRecordRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	maintenanceRepo := repository.NewMaintenanceRecordRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, sessionRepo, cfg)
	animalSvc := service.NewAnimalService(animalRepo)
	healthSvc := service.NewHealthRecordService(healthRepo, animalRepo)
	breedingSvc := service.NewBreedingService(breedingRepo, animalRepo)
	financeSvc := service.NewFinanceService(transactionRepo)
	budgetSvc := service.NewBudgetService(budgetRepo, transactionRepo)
	accountSvc := service.NewAccountService(accountRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo)
	equipmentSvc := service.NewEquipmentService(equipmentRepo, maintenanceRepo)
	documentSvc := service.NewDocumentService(documentRepo)
	dashboardSvc := service.NewDashboardService(animalRepo, healthRepo, inventoryRepo, equipmentRepo, financeSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	animalsH := handler.NewAnimalsHandler(animalSvc)
	healthRecordsH := handler.NewHealthRecordsHandler(healthSvc)
	breedingH := handler.NewBreedingHandler(breedingSvc)
	transactionsH := handler.NewTransactionsHandler(financeSvc)
	budgetsH := handler.NewBudgetsHandler(budgetSvc)
	accountsH := handler.NewAccountsHandler(accountSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	equipmentH := handler.NewEquipmentHandler(equipmentSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, rdb)
	reportsH := handler.NewReportsHandler(financeSvc, cfg.ReportStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes. Roles: user, manager, admin — any authenticated role
	// can read and write its own records; deletes need manager or admin.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	deleteMW := middleware.RequireRole("manager", "admin")
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/animals", animalsH.Create)
		v1.GET("/animals", animalsH.List)
		v1.GET("/animals/:id", animalsH.Get)
		v1.PUT("/animals/:id", animalsH.Update)
		v1.DELETE("/animals/:id", deleteMW, animalsH.Delete)

		v1.POST("/health-records", healthRecordsH.Create)
		v1.GET("/health-records", healthRecordsH.List)
		v1.GET("/health-records/:id", healthRecordsH.Get)
		v1.PUT("/health-records/:id", healthRecordsH.Update)
		v1.DELETE("/health-records/:id", deleteMW, healthRecordsH.Delete)

		v1.POST("/breeding-records", breedingH.Create)
		v1.GET("/breeding-records", breedingH.List)
		v1.GET("/breeding-records/:id", breedingH.Get)
		v1.PUT("/breeding-records/:id", breedingH.Update)
		v1.DELETE("/breeding-records/:id", deleteMW, breedingH.Delete)

		v1.POST("/transactions", transactionsH.Create)
		v1.GET("/transactions", transactionsH.List)
		v1.GET("/transactions/:id", transactionsH.Get)
		v1.PUT("/transactions/:id", transactionsH.Update)
		v1.DELETE("/transactions/:id", deleteMW, transactionsH.Delete)
		v1.GET("/financial-summary", transactionsH.Summary)

		v1.POST("/budgets", budgetsH.Create)
		v1.GET("/budgets", budgetsH.List)
		v1.GET("/budgets/:id", budgetsH.Get)
		v1.PUT("/budgets/:id", budgetsH.Update)
		v1.DELETE("/budgets/:id", deleteMW, budgetsH.Delete)
		v1.GET("/budget-status", budgetsH.Status)

		v1.POST("/accounts", accountsH.Create)
		v1.GET("/accounts", accountsH.List)
		v1.GET("/accounts/trial-balance", accountsH.TrialBalance)
		v1.GET("/accounts/:id", accountsH.Get)
		v1.PUT("/accounts/:id", accountsH.Update)
		v1.DELETE("/accounts/:id", deleteMW, accountsH.Delete)

		v1.POST("/inventory", inventoryH.Create)
		v1.GET("/inventory", inventoryH.List)
		v1.GET("/inventory/low-stock", inventoryH.ListLowStock)
		v1.GET("/inventory/:id", inventoryH.Get)
		v1.PUT("/inventory/:id", inventoryH.Update)
		v1.DELETE("/inventory/:id", deleteMW, inventoryH.Delete)

		v1.POST("/equipment", equipmentH.Create)
		v1.GET("/equipment", equipmentH.List)
		v1.GET("/equipment/:id", equipmentH.Get)
		v1.PUT("/equipment/:id", equipmentH.Update)
		v1.DELETE("/equipment/:id", deleteMW, equipmentH.Delete)
		v1.POST("/equipment/:id/maintenance", equipmentH.AddMaintenance)
		v1.GET("/equipment/:id/maintenance", equipmentH.ListMaintenance)
		v1.DELETE("/equipment/maintenance/:id", deleteMW, equipmentH.DeleteMaintenance)

		v1.POST("/documents", documentsH.Create)
		v1.GET("/documents", documentsH.List)
		v1.GET("/documents/expiring", documentsH.ListExpiring)
		v1.GET("/documents/:id", documentsH.Get)
		v1.PUT("/documents/:id", documentsH.Update)
		v1.DELETE("/documents/:id", deleteMW, documentsH.Delete)

		v1.GET("/dashboard/stats", dashboardH.Stats)
		v1.GET("/reports/financial-summary/pdf", reportsH.FinancialSummaryPDF)

		// User management — admin only
		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
