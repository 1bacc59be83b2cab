package analytics

import (
	"fmt"
	"testing"

	"analytics_service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventosDeRiesgo(id int, nombre string, presentes, ausentes int) []models.AttendanceRow {
	var rows []models.AttendanceRow
	for i := 0; i < presentes; i++ {
		rows = append(rows, models.AttendanceRow{
			EstudianteID: id,
			Estudiante:   nombre,
			Email:        nombre + "@escuela.edu",
			Estado:       models.EstadoPresente,
			Fecha:        mustDate("2026-08-10"),
		})
	}
	for i := 0; i < ausentes; i++ {
		rows = append(rows, models.AttendanceRow{
			EstudianteID: id,
			Estudiante:   nombre,
			Email:        nombre + "@escuela.edu",
			Estado:       models.EstadoAusente,
			Fecha:        mustDate("2026-08-11"),
		})
	}
	return rows
}

func TestDropoutRisk_TwoPresentOneAbsent(t *testing.T) {
	report := DropoutRisk(eventosDeRiesgo(7, "ana", 2, 1))

	require.Equal(t, 1, report.TotalEnRiesgo)
	ana := report.EstudiantesEnRiesgo[0]
	assert.Equal(t, 7, ana.EstudianteID)
	assert.Equal(t, "ana@escuela.edu", ana.Email)
	assert.Equal(t, 1, ana.Ausencias)
	assert.Equal(t, 3, ana.TotalClases)
	assert.Equal(t, 66.67, ana.PorcentajeAsistencia)
	// 66.67 falls in (65,75].
	require.NotNil(t, ana.NivelRiesgo)
	assert.Equal(t, NivelMedio, *ana.NivelRiesgo)
}

func TestDropoutRisk_FiltersAtThreshold(t *testing.T) {
	rows := eventosDeRiesgo(1, "justo", 3, 1)                  // exactly 75%
	rows = append(rows, eventosDeRiesgo(2, "pleno", 4, 0)...)  // 100%
	rows = append(rows, eventosDeRiesgo(3, "riesgo", 1, 3)...) // 25%

	report := DropoutRisk(rows)

	require.Equal(t, 1, report.TotalEnRiesgo)
	assert.Equal(t, 3, report.EstudiantesEnRiesgo[0].EstudianteID)
	for _, e := range report.EstudiantesEnRiesgo {
		assert.Less(t, e.PorcentajeAsistencia, 75.0)
	}
}

func TestDropoutRisk_SortedAscendingStableTies(t *testing.T) {
	rows := append(eventosDeRiesgo(1, "ana", 1, 1), eventosDeRiesgo(2, "beto", 1, 3)...)
	rows = append(rows, eventosDeRiesgo(3, "carla", 1, 1)...)

	report := DropoutRisk(rows)

	require.Equal(t, 3, report.TotalEnRiesgo)
	// beto at 25% first; ana and carla tie at 50% and keep row order.
	assert.Equal(t, 2, report.EstudiantesEnRiesgo[0].EstudianteID)
	assert.Equal(t, 1, report.EstudiantesEnRiesgo[1].EstudianteID)
	assert.Equal(t, 3, report.EstudiantesEnRiesgo[2].EstudianteID)

	for i := 1; i < len(report.EstudiantesEnRiesgo); i++ {
		assert.GreaterOrEqual(t,
			report.EstudiantesEnRiesgo[i].PorcentajeAsistencia,
			report.EstudiantesEnRiesgo[i-1].PorcentajeAsistencia)
	}
}

func TestDropoutRisk_Buckets(t *testing.T) {
	rows := append(eventosDeRiesgo(1, "critico", 1, 1), eventosDeRiesgo(2, "alto", 3, 2)...) // 50%, 60%
	rows = append(rows, eventosDeRiesgo(3, "medio", 7, 3)...)                                // 70%

	report := DropoutRisk(rows)
	require.Equal(t, 3, report.TotalEnRiesgo)

	niveles := make(map[int]string)
	for _, e := range report.EstudiantesEnRiesgo {
		require.NotNil(t, e.NivelRiesgo)
		niveles[e.EstudianteID] = *e.NivelRiesgo
	}
	assert.Equal(t, NivelCritico, niveles[1])
	assert.Equal(t, NivelAlto, niveles[2])
	assert.Equal(t, NivelMedio, niveles[3])
}

func TestDropoutRisk_ZeroPercentHasNoLevel(t *testing.T) {
	report := DropoutRisk(eventosDeRiesgo(1, "ausente", 0, 5))

	require.Equal(t, 1, report.TotalEnRiesgo)
	e := report.EstudiantesEnRiesgo[0]
	assert.Equal(t, 0.0, e.PorcentajeAsistencia)
	// 0 sits outside the (0,50] bin: no tier assigned.
	assert.Nil(t, e.NivelRiesgo)
}

func TestDropoutRisk_BajoUnreachable(t *testing.T) {
	// Students spanning 0..100% in 5-point steps: the <75 filter runs
	// before classification, so the (75,100] bin can never be hit.
	var rows []models.AttendanceRow
	for i := 0; i <= 20; i++ {
		rows = append(rows, eventosDeRiesgo(i+1, fmt.Sprintf("e%d", i), i, 20-i)...)
	}

	report := DropoutRisk(rows)

	assert.NotZero(t, report.TotalEnRiesgo)
	for _, e := range report.EstudiantesEnRiesgo {
		assert.Less(t, e.PorcentajeAsistencia, 75.0)
		if e.NivelRiesgo != nil {
			assert.NotEqual(t, NivelBajo, *e.NivelRiesgo)
		}
	}
}

func TestDropoutRisk_JustificadoCountsInTotalOnly(t *testing.T) {
	rows := eventosDeRiesgo(1, "ana", 1, 0)
	rows = append(rows, models.AttendanceRow{
		EstudianteID: 1,
		Estudiante:   "ana",
		Estado:       models.EstadoJustificado,
		Fecha:        mustDate("2026-08-12"),
	})

	report := DropoutRisk(rows)

	require.Equal(t, 1, report.TotalEnRiesgo)
	e := report.EstudiantesEnRiesgo[0]
	assert.Equal(t, 0, e.Ausencias)
	assert.Equal(t, 2, e.TotalClases)
	assert.Equal(t, 50.0, e.PorcentajeAsistencia)
}

func TestDropoutRisk_Empty(t *testing.T) {
	report := DropoutRisk(nil)

	require.NotNil(t, report.EstudiantesEnRiesgo)
	assert.Empty(t, report.EstudiantesEnRiesgo)
	assert.Equal(t, 0, report.TotalEnRiesgo)
}
