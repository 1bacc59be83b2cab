package handlers

import (
	"net/http"
	"strconv"

	"analytics_service/analytics"
	"analytics_service/store"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the aggregate views. It only fetches rows
// through the RowSource and hands them to the analytics package; any
// failure maps to a 500 with the underlying message.
type AnalyticsHandler struct {
	src store.RowSource
}

func NewAnalyticsHandler(src store.RowSource) *AnalyticsHandler {
	return &AnalyticsHandler{src: src}
}

func (h *AnalyticsHandler) GeneralAttendance(c *gin.Context) {
	rows, err := h.src.RecentAttendance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics.General(rows))
}

func (h *AnalyticsHandler) GroupAttendance(c *gin.Context) {
	grupoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	rows, err := h.src.GroupAttendance(c.Request.Context(), grupoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report, ok := analytics.GroupRollup(rows)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"mensaje": "No hay datos de asistencia para este grupo"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) StudentAttendance(c *gin.Context) {
	estudianteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
		return
	}

	rows, err := h.src.StudentAttendance(c.Request.Context(), estudianteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report, ok := analytics.StudentRollup(rows)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"mensaje": "No hay datos de asistencia para este estudiante"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) TeacherReport(c *gin.Context) {
	profesorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher id"})
		return
	}

	groups, err := h.src.TeacherGroups(c.Request.Context(), profesorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counts := make(map[int]map[string]int, len(groups))
	for _, g := range groups {
		groupCounts, err := h.src.GroupStatusCounts(c.Request.Context(), g.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		counts[g.ID] = groupCounts
	}

	c.JSON(http.StatusOK, analytics.TeacherReport(groups, counts))
}

func (h *AnalyticsHandler) DropoutPrediction(c *gin.Context) {
	rows, err := h.src.RecentAttendanceByStudent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics.DropoutRisk(rows))
}
