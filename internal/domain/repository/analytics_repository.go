package repository

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/report"
)

// AnalyticsRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetTopProducts devuelve los `limit` productos con más unidades vendidas.
	// Mismo orden que report.RankTopSellers: total descendente, id ascendente,
	// incluyendo productos sin ventas si hay cupo — ambos rankings deben
	// coincidir ante el mismo snapshot.
	GetTopProducts(ctx context.Context, limit int) ([]report.RankedProduct, error)
}
