// Package analytics contiene el caso de uso del Dashboard: las tarjetas de
// resumen que la capa de presentación refresca en cada render.
package analytics

import (
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/report"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// DashboardUseCase genera el resumen del día: total de productos, ingresos de
// hoy, alertas de stock bajo y los productos más vendidos.
//
// Carga un snapshot de productos y ventas y aplica sobre él las funciones
// puras del paquete report; el "hoy" viene de un reloj inyectado para que el
// resultado sea reproducible en tests. Ningún valor derivado se cachea entre
// llamadas.
type DashboardUseCase struct {
	productRepo       repository.ProductRepository
	saleRepo          repository.SaleRepository
	lowStockThreshold int
	topLimit          int
	now               func() time.Time
}

// NewDashboardUseCase construye el caso de uso. Umbral y límite en cero o
// negativos caen a los valores por defecto; `now` nil cae a time.Now.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	lowStockThreshold, topLimit int,
	now func() time.Time,
) *DashboardUseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = report.DefaultLowStockThreshold
	}
	if topLimit <= 0 {
		topLimit = 5
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		productRepo:       productRepo,
		saleRepo:          saleRepo,
		lowStockThreshold: lowStockThreshold,
		topLimit:          topLimit,
		now:               now,
	}
}

// GetSummary construye el DashboardSummaryDTO con el snapshot actual.
//
// Las dos cargas (productos y ventas) son independientes y se lanzan en
// paralelo; el cálculo posterior es puro y síncrono.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []entity.Product
		err  error
	}
	type salesResult struct {
		list []entity.Sale
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := uc.productRepo.List()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.saleRepo.List()
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}

	today := uc.now()
	lowStock := report.LowStock(products.list, uc.lowStockThreshold)

	lowStockOut := make([]dto.ProductResponse, 0, len(lowStock))
	for _, p := range lowStock {
		lowStockOut = append(lowStockOut, dto.ProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		})
	}

	return &dto.DashboardSummaryDTO{
		Date:          report.DayKey(today),
		TotalProducts: len(products.list),
		TodayRevenue:  report.RevenueOn(sales.list, today).Round(2),
		LowStockCount: len(lowStock),
		LowStock:      lowStockOut,
		TopProducts:   report.RankTopSellers(products.list, sales.list, uc.topLimit),
	}, nil
}
