package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/spendsense/spendsense-api/handlers"
	"github.com/spendsense/spendsense-api/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupBudgetRoutes sets up protected expense, income, budget, goal, report
// and dashboard routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB) {
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	incomeService := services.NewIncomeService(db)
	goalService := services.NewGoalService(db)
	dashboardService := services.NewDashboardService(budgetService, expenseService, incomeService)
	reportService := services.NewReportService(expenseService)

	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	rg.GET("/expenses", expenseHandler.List)
	rg.POST("/expenses", expenseHandler.Add)
	rg.DELETE("/expenses/:id", expenseHandler.Delete)

	rg.GET("/income", incomeHandler.List)
	rg.POST("/income", incomeHandler.Add)
	rg.DELETE("/income/:id", incomeHandler.Delete)

	rg.GET("/budget", budgetHandler.Get)
	rg.PUT("/budget", budgetHandler.Update)

	rg.GET("/goals", goalHandler.List)
	rg.POST("/goals", goalHandler.Upsert)
	rg.DELETE("/goals/:id", goalHandler.Delete)

	rg.GET("/dashboard", dashboardHandler.Summary)
	rg.GET("/reports", reportHandler.Get)
}

// SetupProductRoutes sets up protected product cache and barcode lookup
// routes.
func SetupProductRoutes(rg *gin.RouterGroup, db *sql.DB) {
	productService := services.NewProductService(db)
	lookupService := services.NewLookupService(productService, services.NewOpenFoodFactsClient())

	productHandler := handlers.NewProductHandler(productService, lookupService)

	rg.GET("/products/lookup", productHandler.LookupBarcode)
	rg.GET("/products", productHandler.List)
	rg.POST("/products", productHandler.Save)
	rg.DELETE("/products/:id", productHandler.Delete)
}

// SetupUserRoutes sets up protected user profile routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
}
