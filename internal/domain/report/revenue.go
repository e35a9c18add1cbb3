package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// RevenueOn suma total_price de las ventas cuyo día calendario (UTC) coincide
// con el de `day`. El día se inyecta explícitamente — nunca se lee el reloj
// aquí — para que el cálculo sea puro y reproducible en tests.
// Devuelve cero si ninguna venta coincide.
func RevenueOn(sales []entity.Sale, day time.Time) decimal.Decimal {
	key := DayKey(day)
	total := decimal.Zero
	for _, s := range sales {
		if DayKey(s.Date) == key {
			total = total.Add(s.TotalPrice)
		}
	}
	return total
}
