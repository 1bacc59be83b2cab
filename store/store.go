// Package store fetches pre-joined attendance rows for the analytics
// engine. Handlers depend on the RowSource interface; the SQL
// implementation owns all query text and knows nothing about how the
// rows get aggregated.
package store

import (
	"context"

	"analytics_service/models"
)

type RowSource interface {
	// RecentAttendance returns every attendance event of the last 30
	// days joined with group, student and teacher attributes.
	RecentAttendance(ctx context.Context) ([]models.AttendanceRow, error)

	// RecentAttendanceByStudent returns the same 30-day window with
	// student identity (id, name, email) on each row, for the risk
	// classification.
	RecentAttendanceByStudent(ctx context.Context) ([]models.AttendanceRow, error)

	// GroupAttendance returns all events of one group, newest first.
	GroupAttendance(ctx context.Context, grupoID int) ([]models.AttendanceRow, error)

	// StudentAttendance returns all events of one student, newest
	// first, with group code and subject.
	StudentAttendance(ctx context.Context, estudianteID int) ([]models.AttendanceRow, error)

	// TeacherGroups returns the groups actively assigned to a teacher
	// with their active-enrollment student counts.
	TeacherGroups(ctx context.Context, profesorID int) ([]models.TeacherGroup, error)

	// GroupStatusCounts returns status -> event count for one group.
	GroupStatusCounts(ctx context.Context, grupoID int) (map[string]int, error)
}
