package models

import "time"

// Attendance status values as stored in the asistencias table.
const (
	EstadoPresente    = "PRESENTE"
	EstadoAusente     = "AUSENTE"
	EstadoTardanza    = "TARDANZA"
	EstadoJustificado = "JUSTIFICADO"
)

// AttendanceRow is one attendance event joined with group, student and
// teacher attributes. Which fields are populated depends on the query
// that produced the row.
type AttendanceRow struct {
	Fecha        time.Time
	Estado       string
	GrupoCodigo  string
	Materia      string
	Semestre     string
	Estudiante   string
	Profesor     string
	EstudianteID int
	Email        string
}

// DailyTrend holds per-status event counts for each date in the
// reporting window. All five slices are index-aligned.
type DailyTrend struct {
	Fechas      []string `json:"fechas"`
	Presente    []int    `json:"presente"`
	Ausente     []int    `json:"ausente"`
	Tardanza    []int    `json:"tardanza"`
	Justificado []int    `json:"justificado"`
}

type GeneralReport struct {
	EstadoGeneral        map[string]int     `json:"estado_general"`
	TendenciaDiaria      DailyTrend         `json:"tendencia_diaria"`
	AsistenciaPorMateria map[string]float64 `json:"asistencia_por_materia"`
}

type StudentStats struct {
	TotalClases          int     `json:"total_clases"`
	Presentes            int     `json:"presentes"`
	Ausentes             int     `json:"ausentes"`
	Tardanzas            int     `json:"tardanzas"`
	Justificados         int     `json:"justificados"`
	PorcentajeAsistencia float64 `json:"porcentaje_asistencia"`
}

// GroupReport aggregates one group's attendance per student plus a
// sparse per-ISO-week trend: a week appears only if it has events, and
// within a week only statuses with a nonzero count appear.
type GroupReport struct {
	EstadisticasEstudiantes map[string]StudentStats `json:"estadisticas_estudiantes"`
	TendenciaSemanal        map[int]map[string]int  `json:"tendencia_semanal"`
}

type SubjectStats struct {
	Total       int     `json:"total"`
	Asistencias int     `json:"asistencias"`
	Porcentaje  float64 `json:"porcentaje"`
}

type StudentReport struct {
	EstadisticasGenerales StudentStats            `json:"estadisticas_generales"`
	PorMateria            map[string]SubjectStats `json:"por_materia"`
}

// TeacherGroup is one group actively assigned to a teacher, with its
// active-enrollment student count. Resolved by the row source, not by
// the engine.
type TeacherGroup struct {
	ID               int
	Codigo           string
	Materia          string
	TotalEstudiantes int
}

type GroupReportEntry struct {
	GrupoID                int            `json:"grupo_id"`
	Codigo                 string         `json:"codigo"`
	Materia                string         `json:"materia"`
	TotalEstudiantes       int            `json:"total_estudiantes"`
	EstadisticasAsistencia map[string]int `json:"estadisticas_asistencia"`
	PorcentajeAsistencia   float64        `json:"porcentaje_asistencia"`
}

type TeacherReport struct {
	Grupos      []GroupReportEntry `json:"grupos"`
	TotalGrupos int                `json:"total_grupos"`
}

// RiskStudent is one student below the attendance threshold.
// NivelRiesgo is nil when the percentage falls outside every risk bin
// (only possible at exactly 0).
type RiskStudent struct {
	EstudianteID         int     `json:"estudiante_id"`
	NombreUsuario        string  `json:"nombre_usuario"`
	Email                string  `json:"email"`
	Ausencias            int     `json:"ausencias"`
	TotalClases          int     `json:"total_clases"`
	PorcentajeAsistencia float64 `json:"porcentaje_asistencia"`
	NivelRiesgo          *string `json:"nivel_riesgo"`
}

type RiskReport struct {
	EstudiantesEnRiesgo []RiskStudent `json:"estudiantes_en_riesgo"`
	TotalEnRiesgo       int           `json:"total_en_riesgo"`
}
