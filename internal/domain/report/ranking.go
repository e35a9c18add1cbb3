package report

import (
	"sort"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// RankedProduct producto con su total de unidades vendidas.
type RankedProduct struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TotalSold int    `json:"total_sold"`
}

// RankTopSellers calcula las unidades vendidas por producto sobre la lista
// completa de ventas (sin filtro de fechas; quien necesite un ranking por
// ventana debe prefiltrar las ventas) y devuelve los `limit` primeros.
//
// Productos sin ventas cuentan con total 0 y solo entran si hay menos de
// `limit` productos con ventas. Ventas cuyo product_id no resuelve a ningún
// producto del snapshot se ignoran. Desempate: total descendente, luego id
// ascendente — misma regla que aplica la consulta SQL de /top-products.
func RankTopSellers(products []entity.Product, sales []entity.Sale, limit int) []RankedProduct {
	totals := make(map[int64]int, len(products))
	for _, s := range sales {
		totals[s.ProductID] += s.Quantity
	}

	ranked := make([]RankedProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, RankedProduct{
			ID:        p.ID,
			Name:      p.Name,
			TotalSold: totals[p.ID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalSold != ranked[j].TotalSold {
			return ranked[i].TotalSold > ranked[j].TotalSold
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
