package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/report"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

const (
	defaultTopLimit = 5
	maxTopLimit     = 100
)

// ReportUseCase orquesta el motor de reportes sobre el snapshot actual:
// valida el rango, carga las ventas y delega la agregación en el paquete
// report. El propio motor no revalida ni toca la base de datos.
type ReportUseCase struct {
	saleRepo      repository.SaleRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, analyticsRepo repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, analyticsRepo: analyticsRepo}
}

// GetDaily devuelve la serie de buckets diarios para el rango [from, to].
// Propaga report.ErrMissingBound / report.ErrInvertedRange sin tocar datos:
// si el rango es inválido la agregación ni siquiera se ejecuta.
func (uc *ReportUseCase) GetDaily(from, to string) ([]report.AggregatePoint, error) {
	rng, err := report.NewRange(from, to)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return report.AggregateDaily(sales, rng), nil
}

// GetTopProducts devuelve el ranking servidor de más vendidos.
// Aplica límites por defecto y máximo al estilo de los listados paginados.
func (uc *ReportUseCase) GetTopProducts(ctx context.Context, limit int) ([]report.RankedProduct, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}
	return uc.analyticsRepo.GetTopProducts(ctx, limit)
}
