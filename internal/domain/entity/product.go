package entity

import "github.com/shopspring/decimal"

// Product representa un producto de la tienda.
// Stock es el inventario disponible; se descuenta al registrar una venta.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal // precio unitario de venta
	Stock int
}
