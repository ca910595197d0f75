package controllers

import (
	"net/http"
	"strconv"

	"github.com/SBP359/MyNutriMate/services"

	"github.com/gin-gonic/gin"
)

type MedicalFileInput struct {
	FileName   string `json:"file_name" binding:"required"`
	Note       string `json:"note"`
	FileBase64 string `json:"file_base64" binding:"required"`
}

func UploadMedicalFile(c *gin.Context) {
	var input MedicalFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := services.UploadMedicalFile(c.GetUint("userID"), input.FileName, input.Note, input.FileBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, file)
}

func ListMedicalFiles(c *gin.Context) {
	files, err := services.ListMedicalFiles(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, files)
}

func DeleteMedicalFile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}
	if err := services.DeleteMedicalFile(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
