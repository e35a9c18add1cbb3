package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// SaleTxRunner ejecuta un callback con repos atados a una misma transacción.
// La implementación vive en infrastructure/postgres.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// SaleUseCase registra y lista ventas.
//
// El alta es transaccional: se bloquea la fila del producto, se verifica el
// stock, se inserta la venta con el total calculado al precio vigente y se
// descuenta el stock — todo o nada, sin ventana de inconsistencia.
type SaleUseCase struct {
	tx       SaleTxRunner
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. `now` es el reloj inyectado con el
// que se fecha la venta (time.Now en producción).
func NewSaleUseCase(tx SaleTxRunner, saleRepo repository.SaleRepository, now func() time.Time) *SaleUseCase {
	if now == nil {
		now = time.Now
	}
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, now: now}
}

// Create registra una venta. El servidor calcula total_price (cantidad ×
// precio vigente) y la fecha. Errores: ErrInvalidInput si quantity <= 0,
// ErrProductNotFound si el producto no existe, ErrInsufficientStock si el
// stock no alcanza.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created entity.Sale
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}

		sale := entity.Sale{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			TotalPrice:  product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
			Date:        uc.now().UTC(),
		}
		if err := saleRepo.Create(&sale); err != nil {
			return err
		}
		if err := productRepo.DecrementStock(product.ID, in.Quantity); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(&created), nil
}

// List devuelve todas las ventas, más recientes primero.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for i := range list {
		out = append(out, *toSaleResponse(&list[i]))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		TotalPrice:  s.TotalPrice,
		Date:        s.Date,
	}
}
