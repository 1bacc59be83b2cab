package store

import (
	"context"
	"database/sql"
	"fmt"

	"analytics_service/models"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) RecentAttendance(ctx context.Context) ([]models.AttendanceRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            a.fecha,
            a.estado,
            g.codigo,
            g.materia,
            g.semestre,
            u.nombre_usuario,
            COALESCE(p.nombre_usuario, '')
        FROM asistencias a
        JOIN usuarios u ON a.estudiante_id = u.id
        JOIN grupos g ON a.grupo_id = g.id
        LEFT JOIN profesores_grupos pg ON g.id = pg.grupo_id
        LEFT JOIN usuarios p ON pg.profesor_id = p.id
        WHERE a.fecha >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)
    `)
	if err != nil {
		return nil, fmt.Errorf("fetching recent attendance: %w", err)
	}
	defer rows.Close()

	var result []models.AttendanceRow
	for rows.Next() {
		var r models.AttendanceRow
		if err := rows.Scan(&r.Fecha, &r.Estado, &r.GrupoCodigo, &r.Materia, &r.Semestre, &r.Estudiante, &r.Profesor); err != nil {
			return nil, fmt.Errorf("scanning attendance row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *SQLStore) RecentAttendanceByStudent(ctx context.Context) ([]models.AttendanceRow, error) {
	// Ordered by event id so students keep a stable first-appearance
	// order for risk-ranking ties.
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            u.id,
            u.nombre_usuario,
            u.email,
            a.estado,
            a.fecha
        FROM asistencias a
        JOIN usuarios u ON a.estudiante_id = u.id
        WHERE a.fecha >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)
        ORDER BY a.id
    `)
	if err != nil {
		return nil, fmt.Errorf("fetching recent attendance by student: %w", err)
	}
	defer rows.Close()

	var result []models.AttendanceRow
	for rows.Next() {
		var r models.AttendanceRow
		if err := rows.Scan(&r.EstudianteID, &r.Estudiante, &r.Email, &r.Estado, &r.Fecha); err != nil {
			return nil, fmt.Errorf("scanning attendance row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *SQLStore) GroupAttendance(ctx context.Context, grupoID int) ([]models.AttendanceRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            a.fecha,
            a.estado,
            u.nombre_usuario,
            u.email
        FROM asistencias a
        JOIN usuarios u ON a.estudiante_id = u.id
        WHERE a.grupo_id = ?
        ORDER BY a.fecha DESC
    `, grupoID)
	if err != nil {
		return nil, fmt.Errorf("fetching attendance for group %d: %w", grupoID, err)
	}
	defer rows.Close()

	var result []models.AttendanceRow
	for rows.Next() {
		var r models.AttendanceRow
		if err := rows.Scan(&r.Fecha, &r.Estado, &r.Estudiante, &r.Email); err != nil {
			return nil, fmt.Errorf("scanning attendance row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *SQLStore) StudentAttendance(ctx context.Context, estudianteID int) ([]models.AttendanceRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            a.fecha,
            a.estado,
            g.codigo,
            g.materia
        FROM asistencias a
        JOIN grupos g ON a.grupo_id = g.id
        WHERE a.estudiante_id = ?
        ORDER BY a.fecha DESC
    `, estudianteID)
	if err != nil {
		return nil, fmt.Errorf("fetching attendance for student %d: %w", estudianteID, err)
	}
	defer rows.Close()

	var result []models.AttendanceRow
	for rows.Next() {
		var r models.AttendanceRow
		if err := rows.Scan(&r.Fecha, &r.Estado, &r.GrupoCodigo, &r.Materia); err != nil {
			return nil, fmt.Errorf("scanning attendance row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *SQLStore) TeacherGroups(ctx context.Context, profesorID int) ([]models.TeacherGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT DISTINCT
            g.id,
            g.codigo,
            g.materia,
            COUNT(DISTINCT eg.estudiante_id)
        FROM grupos g
        JOIN profesores_grupos pg ON g.id = pg.grupo_id
        LEFT JOIN estudiantes_grupos eg ON g.id = eg.grupo_id AND eg.activo = 1
        WHERE pg.profesor_id = ? AND pg.activo = 1
        GROUP BY g.id, g.codigo, g.materia
    `, profesorID)
	if err != nil {
		return nil, fmt.Errorf("fetching groups for teacher %d: %w", profesorID, err)
	}
	defer rows.Close()

	var result []models.TeacherGroup
	for rows.Next() {
		var g models.TeacherGroup
		if err := rows.Scan(&g.ID, &g.Codigo, &g.Materia, &g.TotalEstudiantes); err != nil {
			return nil, fmt.Errorf("scanning teacher group: %w", err)
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func (s *SQLStore) GroupStatusCounts(ctx context.Context, grupoID int) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT a.estado, COUNT(*)
        FROM asistencias a
        WHERE a.grupo_id = ?
        GROUP BY a.estado
    `, grupoID)
	if err != nil {
		return nil, fmt.Errorf("counting statuses for group %d: %w", grupoID, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var estado string
		var n int
		if err := rows.Scan(&estado, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[estado] = n
	}
	return counts, rows.Err()
}
