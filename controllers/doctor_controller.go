package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SBP359/MyNutriMate/services"

	"github.com/gin-gonic/gin"
)

func GetDoctorProfile(c *gin.Context) {
	profile, err := services.GetDoctorProfile(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func ListPatients(c *gin.Context) {
	bundles, err := services.ListPatients(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bundles)
}

type SafeFoodInput struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	FoodName  string `json:"food_name" binding:"required"`
	BrandName string `json:"brand_name"`
	Notes     string `json:"notes"`
}

func AddSafeFood(c *gin.Context) {
	var input SafeFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := services.AddSafeFood(c.GetUint("userID"), input.PatientID, input.FoodName, input.BrandName, input.Notes)
	if errors.Is(err, services.ErrNotConnected) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rule)
}

type RestrictedFoodInput struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	FoodName  string `json:"food_name" binding:"required"`
	BrandName string `json:"brand_name"`
	Reason    string `json:"reason" binding:"required"`
}

func AddRestrictedFood(c *gin.Context) {
	var input RestrictedFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := services.AddRestrictedFood(c.GetUint("userID"), input.PatientID, input.FoodName, input.BrandName, input.Reason)
	if errors.Is(err, services.ErrNotConnected) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func DeleteSafeFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}
	if err := services.DeleteSafeFood(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}

func DeleteRestrictedFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}
	if err := services.DeleteRestrictedFood(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}

// ExportPatients streams an xlsx workbook with every connected
// patient's profile summary and full intake history.
func ExportPatients(c *gin.Context) {
	f, err := services.BuildPatientWorkbook(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("patients_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// --- patient side of the connection ---

type ConnectInput struct {
	DoctorCode string `json:"doctor_code" binding:"required"`
	Note       string `json:"note"`
}

func ConnectToDoctor(c *gin.Context) {
	var input ConnectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := services.ConnectByCode(c.GetUint("userID"), input.DoctorCode, input.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, conn)
}

func ListMyDoctors(c *gin.Context) {
	conns, err := services.ListConnectionsForPatient(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conns)
}
