package report

import (
	"sort"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// AggregatePoint cantidad total vendida en un día calendario.
// Derivado; se recalcula en cada llamada y nunca se persiste.
type AggregatePoint struct {
	Date     string `json:"date"` // YYYY-MM-DD (UTC)
	Quantity int    `json:"quantity"`
}

// AggregateDaily agrupa las ventas por día calendario dentro del rango
// inclusivo y suma las cantidades por día.
//
// Solo aparecen los días con al menos una venta (no se sintetizan ceros);
// la salida queda ordenada ascendente por día, un punto por día distinto.
// El rango debe haber pasado ya por NewRange; aquí no se revalida.
// Pura y determinista: mismas ventas y rango, misma salida.
func AggregateDaily(sales []entity.Sale, r Range) []AggregatePoint {
	buckets := make(map[string]int)
	for _, s := range sales {
		if !r.Contains(s.Date) {
			continue
		}
		buckets[DayKey(s.Date)] += s.Quantity
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]AggregatePoint, 0, len(days))
	for _, day := range days {
		points = append(points, AggregatePoint{Date: day, Quantity: buckets[day]})
	}
	return points
}
