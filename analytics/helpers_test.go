package analytics

import (
	"time"

	"analytics_service/models"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func evento(dia, estado string) models.AttendanceRow {
	return models.AttendanceRow{Fecha: mustDate(dia), Estado: estado}
}
