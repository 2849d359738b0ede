package handlers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"daily-report/dto"
	"daily-report/services"
	"daily-report/store"
)

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return id, true
}

// TodayEntriesHandler returns the user's current-day entries and photo
// count. A user with no activity gets an empty list, not an error.
func TodayEntriesHandler(st *store.DayStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := userID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, dto.NewDayDTO(st.Today(id)))
	}
}

// GenerateReportHandler runs a full report cycle for the user.
func GenerateReportHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := userID(c)
		if !ok {
			return
		}

		rep, err := svc.Generate(c.Request.Context(), id)
		if errors.Is(err, services.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no data today"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewReportDTO(*rep))
	}
}

// ReportDocumentHandler serves today's generated PDF if it exists.
func ReportDocumentHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := userID(c)
		if !ok {
			return
		}

		path := svc.DocumentPath(id)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no document for today"})
			return
		}
		c.File(path)
	}
}
