package analytics

import (
	"sort"
	"time"

	"analytics_service/models"
)

// General computes the service-wide overview for a window of rows:
// event counts per status, a dense daily trend and the attendance
// percentage per subject. An empty window yields the same structure
// with empty maps and zero-length slices, so callers never
// special-case absence.
func General(rows []models.AttendanceRow) models.GeneralReport {
	report := models.GeneralReport{
		EstadoGeneral:        make(map[string]int),
		AsistenciaPorMateria: make(map[string]float64),
		TendenciaDiaria: models.DailyTrend{
			Fechas:      []string{},
			Presente:    []int{},
			Ausente:     []int{},
			Tardanza:    []int{},
			Justificado: []int{},
		},
	}

	porDia := make(map[string]map[string]int)
	type materiaAgg struct {
		total       int
		asistencias int
	}
	porMateria := make(map[string]*materiaAgg)

	for _, r := range rows {
		report.EstadoGeneral[r.Estado]++

		dia := r.Fecha.Format(time.DateOnly)
		if porDia[dia] == nil {
			porDia[dia] = make(map[string]int)
		}
		porDia[dia][r.Estado]++

		agg := porMateria[r.Materia]
		if agg == nil {
			agg = &materiaAgg{}
			porMateria[r.Materia] = agg
		}
		agg.total++
		if esAsistencia(r.Estado) {
			agg.asistencias++
		}
	}

	fechas := make([]string, 0, len(porDia))
	for dia := range porDia {
		fechas = append(fechas, dia)
	}
	sort.Strings(fechas)

	// Every status gets a count for every date, zero included, so the
	// five trend slices stay index-aligned.
	for _, dia := range fechas {
		counts := porDia[dia]
		report.TendenciaDiaria.Fechas = append(report.TendenciaDiaria.Fechas, dia)
		report.TendenciaDiaria.Presente = append(report.TendenciaDiaria.Presente, counts[models.EstadoPresente])
		report.TendenciaDiaria.Ausente = append(report.TendenciaDiaria.Ausente, counts[models.EstadoAusente])
		report.TendenciaDiaria.Tardanza = append(report.TendenciaDiaria.Tardanza, counts[models.EstadoTardanza])
		report.TendenciaDiaria.Justificado = append(report.TendenciaDiaria.Justificado, counts[models.EstadoJustificado])
	}

	for materia, agg := range porMateria {
		report.AsistenciaPorMateria[materia] = porcentaje(agg.asistencias, agg.total)
	}

	return report
}
