package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta y asigna el ID serial generado.
// total_price y date ya vienen calculados por el caso de uso.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity, total_price, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.ProductID, sale.Quantity, sale.TotalPrice, sale.Date,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List devuelve todas las ventas, más recientes primero, con el nombre del
// producto denormalizado. Productos eliminados aparecen como "Unknown".
func (r *SaleRepo) List() ([]entity.Sale, error) {
	query := `
		SELECT s.id, s.product_id, COALESCE(p.name, 'Unknown') AS product_name,
		       s.quantity, s.total_price, s.date
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		ORDER BY s.date DESC, s.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.TotalPrice, &s.Date,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
