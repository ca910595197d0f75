package controllers

import (
	"errors"
	"net/http"

	"github.com/SBP359/MyNutriMate/services"
	"github.com/SBP359/MyNutriMate/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user, err := services.GetUser(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetDailyGoals returns the computed targets. An incomplete profile is
// not an error to the client; the goals are simply not available yet.
func GetDailyGoals(c *gin.Context) {
	goal, err := services.GetDailyGoal(c.GetUint("userID"))
	if errors.Is(err, utils.ErrInsufficientProfile) {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "complete your profile to get daily targets"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "goal": goal})
}

func GetProgress(c *gin.Context) {
	goal, progress, err := services.GetGoalsAndProgress(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": goal != nil,
		"goal":      goal,
		"progress":  progress,
	})
}

func GetBodyMass(c *gin.Context) {
	bm, err := services.BodyMass(c.GetUint("userID"))
	if errors.Is(err, utils.ErrBodyMassUnavailable) {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": true,
		"bmi":       bm.BMI,
		"category":  bm.Category,
		"at_risk":   bm.AtRisk,
	})
}
