package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pro/internal/application/analytics"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SaleUC      *usecase.SaleUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/daily", reportHandler.Daily)
	api.Get("/top-products", reportHandler.TopProducts)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
