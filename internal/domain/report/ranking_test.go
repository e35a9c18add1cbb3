package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/report"
)

func producto(id int64, name string, stock int) entity.Product {
	return entity.Product{ID: id, Name: name, Price: decimal.NewFromInt(10), Stock: stock}
}

func TestRankTopSellers_OrdenaPorTotalDescendente(t *testing.T) {
	products := []entity.Product{
		producto(1, "Arroz", 10),
		producto(2, "Frijol", 10),
		producto(3, "Azúcar", 10),
	}
	sales := []entity.Sale{
		venta(1, 2, "2024-01-01", 7, "70"),
		venta(2, 1, "2024-01-02", 4, "40"),
		venta(3, 1, "2024-01-03", 6, "60"),
		venta(4, 3, "2024-01-03", 2, "20"),
	}

	ranked := report.RankTopSellers(products, sales, 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(1), ranked[0].ID)
	assert.Equal(t, 10, ranked[0].TotalSold)
	assert.Equal(t, int64(2), ranked[1].ID)
	assert.Equal(t, 7, ranked[1].TotalSold)
	assert.Equal(t, int64(3), ranked[2].ID)
	assert.Equal(t, 2, ranked[2].TotalSold)

	// Propiedad de orden: totales no crecientes entre pares adyacentes.
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].TotalSold, ranked[i].TotalSold)
	}
}

func TestRankTopSellers_EmpateResuelvePorIDAscendente(t *testing.T) {
	// Escenario del contrato: A=10, B=7, C=7 con limit 2.
	products := []entity.Product{
		producto(3, "C", 10),
		producto(1, "A", 10),
		producto(2, "B", 10),
	}
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 10, "100"),
		venta(2, 2, "2024-01-01", 7, "70"),
		venta(3, 3, "2024-01-01", 7, "70"),
	}

	ranked := report.RankTopSellers(products, sales, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[0].ID)
	// Desempate documentado: entre B(2) y C(3) con total 7 gana el id menor.
	assert.Equal(t, int64(2), ranked[1].ID)
}

func TestRankTopSellers_ProductosSinVentasEntranConCero(t *testing.T) {
	products := []entity.Product{
		producto(1, "Arroz", 10),
		producto(2, "Frijol", 10),
	}
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 3, "30"),
	}

	ranked := report.RankTopSellers(products, sales, 5)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[1].ID)
	assert.Equal(t, 0, ranked[1].TotalSold)
}

func TestRankTopSellers_TamanoAcotadoPorLimitYProductos(t *testing.T) {
	products := []entity.Product{
		producto(1, "Arroz", 10),
		producto(2, "Frijol", 10),
		producto(3, "Azúcar", 10),
	}

	// |salida| == min(limit, productos)
	assert.Len(t, report.RankTopSellers(products, nil, 2), 2)
	assert.Len(t, report.RankTopSellers(products, nil, 3), 3)
	assert.Len(t, report.RankTopSellers(products, nil, 10), 3)
}

func TestRankTopSellers_IgnoraVentasDeProductoDesconocido(t *testing.T) {
	products := []entity.Product{producto(1, "Arroz", 10)}
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 2, "20"),
		venta(2, 99, "2024-01-01", 50, "500"), // producto eliminado
	}

	ranked := report.RankTopSellers(products, sales, 5)

	require.Len(t, ranked, 1)
	assert.Equal(t, 2, ranked[0].TotalSold)
}

func TestRankTopSellers_SinFiltroDeFechas(t *testing.T) {
	// A diferencia de AggregateDaily, el ranking cubre toda la lista de ventas.
	products := []entity.Product{producto(1, "Arroz", 10)}
	sales := []entity.Sale{
		venta(1, 1, "2020-01-01", 1, "10"),
		venta(2, 1, "2024-12-31", 1, "10"),
	}

	ranked := report.RankTopSellers(products, sales, 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, 2, ranked[0].TotalSold)
}

func TestRankTopSellers_EsIdempotente(t *testing.T) {
	products := []entity.Product{producto(1, "A", 1), producto(2, "B", 1)}
	sales := []entity.Sale{venta(1, 2, "2024-01-01", 3, "30")}

	first := report.RankTopSellers(products, sales, 2)
	second := report.RankTopSellers(products, sales, 2)
	assert.Equal(t, first, second)
}
