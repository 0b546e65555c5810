package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nisaworld/muebleria-api/internal/application/analytics"
	"github.com/nisaworld/muebleria-api/internal/application/auth"
	"github.com/nisaworld/muebleria-api/internal/application/categories"
	"github.com/nisaworld/muebleria-api/internal/application/expenses"
	"github.com/nisaworld/muebleria-api/internal/application/inventory"
	"github.com/nisaworld/muebleria-api/internal/application/sales"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *categories.CategoryUseCase
	InventoryUC *inventory.InventoryUseCase
	SalesUC     *sales.SalesUseCase
	ExpenseUC   *expenses.ExpenseUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/staff/login", authHandler.StaffLogin)
	authGroup.Post("/staff/signup", authHandler.StaffSignup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authProtected := protected.Group("/auth")
	authProtected.Get("/me", authHandler.Me)
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Post("/change-password", authHandler.ChangePassword)
	authProtected.Post("/create-user", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Users (solo admin)
	userHandler := NewUserHandler(deps.AuthUC, deps.Log)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Categories (lectura para todos, escritura solo admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categoriesGroup := protected.Group("/categories")
	categoriesGroup.Get("/", categoryHandler.List)
	categoriesGroup.Get("/:id", categoryHandler.GetByID)
	categoriesGroup.Post("/", RequireRole(entity.RoleAdmin), categoryHandler.Create)
	categoriesGroup.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Log)
	inventoryGroup := protected.Group("/inventory")
	inventoryGroup.Post("/products", inventoryHandler.Create)
	inventoryGroup.Post("/products/bulk", inventoryHandler.BulkCreate)
	inventoryGroup.Get("/products", inventoryHandler.List)
	inventoryGroup.Put("/products/:id", inventoryHandler.Update)

	// Sales
	salesHandler := NewSalesHandler(deps.SalesUC, deps.Log)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Post("/bulk", salesHandler.BulkCreate)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/invoice/:invoice_no/pdf", salesHandler.InvoicePDF)
	salesGroup.Put("/:id", salesHandler.Update)
	salesGroup.Delete("/:id", salesHandler.Delete)

	// Expenses
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.Log)
	expensesGroup := protected.Group("/expenses")
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Post("/bulk", expenseHandler.BulkCreate)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Put("/:id", expenseHandler.Update)
	expensesGroup.Delete("/:id", expenseHandler.Delete)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
	protected.Get("/reports/monthly/:year", dashboardHandler.MonthlyReport)
}
