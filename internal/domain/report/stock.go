package report

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// DefaultLowStockThreshold umbral de reposición si no se configura otro.
const DefaultLowStockThreshold = 5

// LowStock devuelve los productos con stock menor o igual al umbral,
// preservando el orden relativo original. Filtro puro, sin efectos.
func LowStock(products []entity.Product, threshold int) []entity.Product {
	low := make([]entity.Product, 0)
	for _, p := range products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low
}
