package analytics

import "analytics_service/models"

// StudentRollup aggregates all rows of one student: overall statistics
// plus a per-subject breakdown. The second return value is false when
// the student has no rows.
func StudentRollup(rows []models.AttendanceRow) (models.StudentReport, bool) {
	if len(rows) == 0 {
		return models.StudentReport{}, false
	}

	report := models.StudentReport{
		PorMateria: make(map[string]models.SubjectStats),
	}

	for _, r := range rows {
		countEstado(&report.EstadisticasGenerales, r.Estado)

		stats := report.PorMateria[r.Materia]
		stats.Total++
		if esAsistencia(r.Estado) {
			stats.Asistencias++
		}
		report.PorMateria[r.Materia] = stats
	}

	general := &report.EstadisticasGenerales
	general.PorcentajeAsistencia = porcentaje(general.Presentes+general.Tardanzas, general.TotalClases)

	for materia, stats := range report.PorMateria {
		stats.Porcentaje = porcentaje(stats.Asistencias, stats.Total)
		report.PorMateria[materia] = stats
	}

	return report, true
}
