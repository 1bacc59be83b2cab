// Package analytics turns row sets of attendance events into the
// aggregate views the dashboard consumes. Every function here is pure:
// same rows in, same report out, no state kept between calls.
package analytics

import (
	"math"

	"analytics_service/models"
)

// esAsistencia reports whether a status counts as attending.
func esAsistencia(estado string) bool {
	return estado == models.EstadoPresente || estado == models.EstadoTardanza
}

// porcentaje returns asistencias out of total as a percentage rounded
// to two decimals. Zero total yields 0, never a division.
func porcentaje(asistencias, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(asistencias)/float64(total)*10000) / 100
}
