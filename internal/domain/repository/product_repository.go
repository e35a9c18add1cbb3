package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID serial.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando la fila; usar solo dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.Product, error)
	List() ([]entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// DecrementStock descuenta unidades vendidas del stock del producto.
	DecrementStock(productID int64, quantity int) error
}
