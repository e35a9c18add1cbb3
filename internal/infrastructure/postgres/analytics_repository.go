package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/ventas-pro/internal/domain/report"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetTopProducts devuelve los `limit` productos con más unidades vendidas.
// LEFT JOIN para incluir productos sin ventas (total 0) si hay cupo, y el
// mismo desempate que report.RankTopSellers: total descendente, id ascendente.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, limit int) ([]report.RankedProduct, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    COALESCE(SUM(s.quantity), 0)::BIGINT AS total_sold
	FROM products p
	LEFT JOIN sales s ON s.product_id = p.id
	GROUP BY p.id, p.name
	ORDER BY total_sold DESC, p.id ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	ranked := make([]report.RankedProduct, 0, limit)
	for rows.Next() {
		var row report.RankedProduct
		var total int64
		if err := rows.Scan(&row.ID, &row.Name, &total); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		row.TotalSold = int(total)
		ranked = append(ranked, row)
	}
	return ranked, rows.Err()
}
