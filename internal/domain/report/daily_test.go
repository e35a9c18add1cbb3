package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/report"
)

// venta helper para armar ventas de prueba en un día dado.
func venta(id int64, productID int64, day string, qty int, total string) entity.Sale {
	d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		panic(err)
	}
	return entity.Sale{
		ID:         id,
		ProductID:  productID,
		Quantity:   qty,
		TotalPrice: decimal.RequireFromString(total),
		Date:       d.Add(10 * time.Hour), // hora arbitraria dentro del día
	}
}

func rango(t *testing.T, from, to string) report.Range {
	t.Helper()
	r, err := report.NewRange(from, to)
	require.NoError(t, err)
	return r
}

func TestAggregateDaily_AgrupaYSumaPorDia(t *testing.T) {
	// Escenario del contrato: dos ventas el día 1 y una el día 2.
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 3, "30"),
		venta(2, 1, "2024-01-01", 2, "20"),
		venta(3, 2, "2024-01-02", 5, "50"),
	}

	points := report.AggregateDaily(sales, rango(t, "2024-01-01", "2024-01-02"))

	require.Len(t, points, 2)
	assert.Equal(t, report.AggregatePoint{Date: "2024-01-01", Quantity: 5}, points[0])
	assert.Equal(t, report.AggregatePoint{Date: "2024-01-02", Quantity: 5}, points[1])
}

func TestAggregateDaily_FiltraFueraDeRango(t *testing.T) {
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 3, "30"),
		venta(2, 1, "2024-01-01", 2, "20"),
		venta(3, 2, "2024-01-02", 5, "50"),
	}

	points := report.AggregateDaily(sales, rango(t, "2024-01-02", "2024-01-02"))

	require.Len(t, points, 1)
	assert.Equal(t, report.AggregatePoint{Date: "2024-01-02", Quantity: 5}, points[0])
}

func TestAggregateDaily_NoSintetizaDiasEnCero(t *testing.T) {
	// Hueco el 2024-01-02: no debe aparecer un punto con cantidad 0.
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 1, "10"),
		venta(2, 1, "2024-01-03", 1, "10"),
	}

	points := report.AggregateDaily(sales, rango(t, "2024-01-01", "2024-01-03"))

	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, "2024-01-03", points[1].Date)
}

func TestAggregateDaily_SalidaOrdenadaSinDuplicados(t *testing.T) {
	// Ventas en desorden cronológico a propósito.
	sales := []entity.Sale{
		venta(1, 1, "2024-03-09", 2, "20"),
		venta(2, 1, "2024-03-01", 4, "40"),
		venta(3, 1, "2024-03-05", 1, "10"),
		venta(4, 1, "2024-03-01", 3, "30"),
	}

	points := report.AggregateDaily(sales, rango(t, "2024-03-01", "2024-03-31"))

	require.Len(t, points, 3)
	seen := make(map[string]bool)
	for i, p := range points {
		assert.False(t, seen[p.Date], "día duplicado %s", p.Date)
		seen[p.Date] = true
		if i > 0 {
			assert.Less(t, points[i-1].Date, p.Date, "la salida debe ser ascendente")
		}
	}
}

func TestAggregateDaily_ConservaElTotalDeUnidades(t *testing.T) {
	// Propiedad de conservación: la suma de los buckets es igual a la suma
	// de las cantidades de las ventas dentro del rango.
	sales := []entity.Sale{
		venta(1, 1, "2024-05-01", 3, "30"),
		venta(2, 2, "2024-05-01", 7, "70"),
		venta(3, 1, "2024-05-02", 2, "20"),
		venta(4, 3, "2024-05-10", 6, "60"),
		venta(5, 1, "2024-06-01", 9, "90"), // fuera de rango
	}
	r := rango(t, "2024-05-01", "2024-05-31")

	points := report.AggregateDaily(sales, r)

	sumBuckets := 0
	for _, p := range points {
		sumBuckets += p.Quantity
	}
	sumVentas := 0
	for _, s := range sales {
		if r.Contains(s.Date) {
			sumVentas += s.Quantity
		}
	}
	assert.Equal(t, sumVentas, sumBuckets)
	assert.Equal(t, 18, sumBuckets)
}

func TestAggregateDaily_EsIdempotente(t *testing.T) {
	sales := []entity.Sale{
		venta(1, 1, "2024-01-01", 3, "30"),
		venta(2, 2, "2024-01-02", 5, "50"),
	}
	r := rango(t, "2024-01-01", "2024-01-02")

	first := report.AggregateDaily(sales, r)
	second := report.AggregateDaily(sales, r)

	assert.Equal(t, first, second, "misma entrada debe producir la misma salida")
}

func TestAggregateDaily_SinVentas_RetornaVacio(t *testing.T) {
	points := report.AggregateDaily(nil, rango(t, "2024-01-01", "2024-01-31"))
	assert.Empty(t, points)
	assert.NotNil(t, points, "debe serializar como [] y no como null")
}
