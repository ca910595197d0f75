package controllers

import (
	"net/http"

	"github.com/SBP359/MyNutriMate/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Vision *services.VisionService
	Intake *services.IntakeService
}

func NewAnalysisController(vision *services.VisionService, intake *services.IntakeService) *AnalysisController {
	return &AnalysisController{Vision: vision, Intake: intake}
}

type AnalyzeFoodInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// AnalyzeFood runs a meal photo through recognition and analysis. The
// result is a preview; nothing is logged until the user commits it.
func (ac *AnalysisController) AnalyzeFood(c *gin.Context) {
	var input AnalyzeFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUser(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	res, err := ac.Vision.AnalyzeFoodImage(user, input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

type AnalyzeLabelInput struct {
	LabelText string `json:"label_text" binding:"required"`
}

func (ac *AnalysisController) AnalyzeLabel(c *gin.Context) {
	var input AnalyzeLabelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUser(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	res, err := ac.Vision.AnalyzeLabelText(user, input.LabelText)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// CommitIntake accepts an analysis the user confirmed and writes it to
// the log. The safety verdict is recomputed server side.
func (ac *AnalysisController) CommitIntake(c *gin.Context) {
	var input services.CommitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := ac.Intake.Commit(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}
