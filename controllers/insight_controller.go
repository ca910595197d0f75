package controllers

import (
	"net/http"

	"github.com/SBP359/MyNutriMate/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Insight *services.InsightService
}

func NewInsightController(insight *services.InsightService) *InsightController {
	return &InsightController{Insight: insight}
}

func (ic *InsightController) GetInsight(c *gin.Context) {
	insight, err := ic.Insight.GetInsight(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if insight == nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "insight": insight})
}
