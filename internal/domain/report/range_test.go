package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/domain/report"
)

func TestNewRange_RangoValido(t *testing.T) {
	r, err := report.NewRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), r.To)
}

func TestNewRange_MismoDiaEsValido(t *testing.T) {
	r, err := report.NewRange("2024-02-10", "2024-02-10")
	require.NoError(t, err)
	assert.Equal(t, r.From, r.To)
}

func TestNewRange_FaltaDesde_RetornaMissingBound(t *testing.T) {
	_, err := report.NewRange("", "2024-02-01")
	assert.ErrorIs(t, err, report.ErrMissingBound)
}

func TestNewRange_FaltaHasta_RetornaMissingBound(t *testing.T) {
	_, err := report.NewRange("2024-02-01", "")
	assert.ErrorIs(t, err, report.ErrMissingBound)
}

func TestNewRange_RangoInvertido_RetornaInvertedRange(t *testing.T) {
	// Caso del contrato: desde 2024-02-10 hasta 2024-02-01 debe rechazarse.
	_, err := report.NewRange("2024-02-10", "2024-02-01")
	assert.ErrorIs(t, err, report.ErrInvertedRange)
}

func TestNewRange_FechaMalformada_RetornaError(t *testing.T) {
	_, err := report.NewRange("01/02/2024", "2024-02-10")
	require.Error(t, err)
	assert.NotErrorIs(t, err, report.ErrMissingBound)
	assert.NotErrorIs(t, err, report.ErrInvertedRange)
}

func TestRange_Contains_InclusivoEnAmbosExtremos(t *testing.T) {
	r, err := report.NewRange("2024-01-10", "2024-01-12")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 12, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)))
}

func TestDayKey_NormalizaAUTC(t *testing.T) {
	// 23:30 del 1 de enero en UTC-5 ya es 2 de enero en UTC.
	bogota := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2024, 1, 1, 23, 30, 0, 0, bogota)
	assert.Equal(t, "2024-01-02", report.DayKey(ts))
}
