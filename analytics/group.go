package analytics

import "analytics_service/models"

// GroupRollup aggregates one group's rows per student and per ISO
// week. The second return value is false when the group has no rows at
// all, which callers report as a no-data result rather than zeroed
// statistics.
func GroupRollup(rows []models.AttendanceRow) (models.GroupReport, bool) {
	if len(rows) == 0 {
		return models.GroupReport{}, false
	}

	report := models.GroupReport{
		EstadisticasEstudiantes: make(map[string]models.StudentStats),
		TendenciaSemanal:        make(map[int]map[string]int),
	}

	for _, r := range rows {
		stats := report.EstadisticasEstudiantes[r.Estudiante]
		countEstado(&stats, r.Estado)
		report.EstadisticasEstudiantes[r.Estudiante] = stats

		_, semana := r.Fecha.ISOWeek()
		if report.TendenciaSemanal[semana] == nil {
			report.TendenciaSemanal[semana] = make(map[string]int)
		}
		report.TendenciaSemanal[semana][r.Estado]++
	}

	for estudiante, stats := range report.EstadisticasEstudiantes {
		stats.PorcentajeAsistencia = porcentaje(stats.Presentes+stats.Tardanzas, stats.TotalClases)
		report.EstadisticasEstudiantes[estudiante] = stats
	}

	return report, true
}

func countEstado(stats *models.StudentStats, estado string) {
	stats.TotalClases++
	switch estado {
	case models.EstadoPresente:
		stats.Presentes++
	case models.EstadoAusente:
		stats.Ausentes++
	case models.EstadoTardanza:
		stats.Tardanzas++
	case models.EstadoJustificado:
		stats.Justificados++
	}
}
