package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/domain/report"
)

// DailyReportRequest parámetros de GET /api/reports/daily.
type DailyReportRequest struct {
	From string `query:"from"` // YYYY-MM-DD, inclusivo
	To   string `query:"to"`   // YYYY-MM-DD, inclusivo
}

// DashboardSummaryDTO tarjetas de resumen del dashboard: conteo de productos,
// ingresos del día, alertas de stock bajo y productos más vendidos.
type DashboardSummaryDTO struct {
	Date          string                 `json:"date"` // día calendario (UTC) del resumen
	TotalProducts int                    `json:"total_products"`
	TodayRevenue  decimal.Decimal        `json:"today_revenue"`
	LowStockCount int                    `json:"low_stock_count"`
	LowStock      []ProductResponse      `json:"low_stock"`
	TopProducts   []report.RankedProduct `json:"top_products"`
}
