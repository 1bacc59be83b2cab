package analytics

import (
	"sort"

	"analytics_service/models"
)

// Dropout-risk severity tiers.
const (
	NivelCritico = "CRITICO"
	NivelAlto    = "ALTO"
	NivelMedio   = "MEDIO"
	NivelBajo    = "BAJO"
)

// umbralRiesgo is the attendance percentage below which a student is
// flagged as at risk.
const umbralRiesgo = 75

// DropoutRisk flags students whose attendance over the window falls
// below the risk threshold, ordered worst first. Students with equal
// percentages keep the order in which they first appear in rows.
func DropoutRisk(rows []models.AttendanceRow) models.RiskReport {
	type acc struct {
		nombre      string
		email       string
		ausencias   int
		asistencias int
		total       int
	}
	porEstudiante := make(map[int]*acc)
	orden := make([]int, 0)

	for _, r := range rows {
		a := porEstudiante[r.EstudianteID]
		if a == nil {
			a = &acc{nombre: r.Estudiante, email: r.Email}
			porEstudiante[r.EstudianteID] = a
			orden = append(orden, r.EstudianteID)
		}
		a.total++
		switch {
		case r.Estado == models.EstadoAusente:
			a.ausencias++
		case esAsistencia(r.Estado):
			a.asistencias++
		}
	}

	enRiesgo := make([]models.RiskStudent, 0)
	for _, id := range orden {
		a := porEstudiante[id]
		pct := porcentaje(a.asistencias, a.total)
		if pct >= umbralRiesgo {
			continue
		}
		enRiesgo = append(enRiesgo, models.RiskStudent{
			EstudianteID:         id,
			NombreUsuario:        a.nombre,
			Email:                a.email,
			Ausencias:            a.ausencias,
			TotalClases:          a.total,
			PorcentajeAsistencia: pct,
			NivelRiesgo:          nivelRiesgo(pct),
		})
	}

	sort.SliceStable(enRiesgo, func(i, j int) bool {
		return enRiesgo[i].PorcentajeAsistencia < enRiesgo[j].PorcentajeAsistencia
	})

	return models.RiskReport{
		EstudiantesEnRiesgo: enRiesgo,
		TotalEnRiesgo:       len(enRiesgo),
	}
}

// nivelRiesgo buckets a percentage into a severity tier. The bins are
// half-open on the left, so exactly 0 matches none of them and yields
// no tier. The BAJO bin sits entirely above the risk threshold and is
// therefore never assigned by DropoutRisk.
func nivelRiesgo(pct float64) *string {
	var nivel string
	switch {
	case pct > 0 && pct <= 50:
		nivel = NivelCritico
	case pct > 50 && pct <= 65:
		nivel = NivelAlto
	case pct > 65 && pct <= 75:
		nivel = NivelMedio
	case pct > 75 && pct <= 100:
		nivel = NivelBajo
	default:
		return nil
	}
	return &nivel
}
