package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SBP359/MyNutriMate/services"
	"github.com/SBP359/MyNutriMate/utils"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Intake *services.IntakeService
}

func NewHistoryController(intake *services.IntakeService) *HistoryController {
	return &HistoryController{Intake: intake}
}

func (hc *HistoryController) ListHistory(c *gin.Context) {
	records, err := hc.Intake.ListRecords(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListDay returns the entries for one calendar day, defaulting to today.
// The day is interpreted in the server's local timezone.
func (hc *HistoryController) ListDay(c *gin.Context) {
	day := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	records, err := services.ListRecordsForDay(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   utils.SumIntakeForDay(records, day),
	})
}

func (hc *HistoryController) DeleteRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	if err := hc.Intake.DeleteRecord(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}
