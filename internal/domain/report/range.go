// Package report contiene el motor de agregación de ventas: transformaciones
// puras sobre el snapshot en memoria de productos y ventas (buckets diarios,
// ranking de más vendidos, alertas de stock bajo e ingresos del día).
//
// Convención de zona horaria: todos los cortes por día calendario se hacen en
// UTC, tanto aquí como en las consultas SQL de analítica, para que ambos
// caminos produzcan el mismo bucket ante el mismo timestamp.
package report

import (
	"errors"
	"fmt"
	"time"
)

// dayLayout formato de día calendario usado en toda la API (YYYY-MM-DD).
const dayLayout = "2006-01-02"

var (
	// ErrMissingBound falta la fecha 'desde' o 'hasta'.
	ErrMissingBound = errors.New("se requieren las fechas desde y hasta")
	// ErrInvertedRange la fecha 'desde' es posterior a 'hasta'.
	ErrInvertedRange = errors.New("la fecha desde no puede ser posterior a hasta")
)

// Range rango de días calendario, inclusivo en ambos extremos.
// From y To son medianoches UTC.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange valida y construye un rango a partir de fechas YYYY-MM-DD.
// Falla con ErrMissingBound si falta alguna fecha y con ErrInvertedRange
// si from es estrictamente posterior a to. No tiene efectos secundarios.
func NewRange(from, to string) (Range, error) {
	if from == "" || to == "" {
		return Range{}, ErrMissingBound
	}
	f, err := time.ParseInLocation(dayLayout, from, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("fecha desde inválida %q: %w", from, err)
	}
	t, err := time.ParseInLocation(dayLayout, to, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("fecha hasta inválida %q: %w", to, err)
	}
	if f.After(t) {
		return Range{}, ErrInvertedRange
	}
	return Range{From: f, To: t}, nil
}

// Contains indica si el día calendario (UTC) de t cae dentro del rango.
func (r Range) Contains(t time.Time) bool {
	key := DayKey(t)
	return key >= r.From.Format(dayLayout) && key <= r.To.Format(dayLayout)
}

// DayKey devuelve el día calendario UTC de t como YYYY-MM-DD.
// Las claves ordenan lexicográficamente igual que cronológicamente.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}
