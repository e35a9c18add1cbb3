package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	// Create persiste la venta y asigna su ID serial.
	Create(sale *entity.Sale) error
	// List devuelve todas las ventas, más recientes primero, con el nombre del
	// producto denormalizado ("Unknown" si el producto ya fue eliminado).
	List() ([]entity.Sale, error)
}
