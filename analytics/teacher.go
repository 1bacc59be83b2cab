package analytics

import "analytics_service/models"

// TeacherReport builds one report entry per assigned group. counts
// maps group id to its status tallies; a group with no tallies still
// gets an entry, with an empty status map and a zero percentage, so
// the output length always matches the number of assigned groups.
func TeacherReport(groups []models.TeacherGroup, counts map[int]map[string]int) models.TeacherReport {
	report := models.TeacherReport{
		Grupos: make([]models.GroupReportEntry, 0, len(groups)),
	}

	for _, g := range groups {
		estadisticas := counts[g.ID]
		if estadisticas == nil {
			estadisticas = make(map[string]int)
		}

		total := 0
		for _, n := range estadisticas {
			total += n
		}
		presentes := estadisticas[models.EstadoPresente] + estadisticas[models.EstadoTardanza]

		report.Grupos = append(report.Grupos, models.GroupReportEntry{
			GrupoID:                g.ID,
			Codigo:                 g.Codigo,
			Materia:                g.Materia,
			TotalEstudiantes:       g.TotalEstudiantes,
			EstadisticasAsistencia: estadisticas,
			PorcentajeAsistencia:   porcentaje(presentes, total),
		})
	}

	report.TotalGrupos = len(report.Grupos)
	return report
}
