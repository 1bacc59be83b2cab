package routes

import (
	"analytics_service/handlers"
	"analytics_service/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, src store.RowSource) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	analyticsHandler := handlers.NewAnalyticsHandler(src)

	r.GET("/health", healthHandler.HealthCheck)

	// Attendance analytics
	r.GET("/asistencia/general", analyticsHandler.GeneralAttendance)
	r.GET("/asistencia/grupo/:id", analyticsHandler.GroupAttendance)
	r.GET("/asistencia/estudiante/:id", analyticsHandler.StudentAttendance)

	// Reports
	r.GET("/reporte/profesor/:id", analyticsHandler.TeacherReport)
	r.GET("/prediccion/desercion", analyticsHandler.DropoutPrediction)
}
