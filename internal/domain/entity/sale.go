package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada.
// TotalPrice lo calcula el servidor al crear la venta (cantidad × precio vigente);
// ProductName es denormalizado para presentación y puede venir vacío.
type Sale struct {
	ID          int64
	ProductID   int64
	ProductName string // solo display; "Unknown" si el producto ya no existe
	Quantity    int
	TotalPrice  decimal.Decimal
	Date        time.Time
}
