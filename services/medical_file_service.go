package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"
)

// UploadMedicalFile stores a document (prescription scan, lab report)
// in S3 and keeps the metadata row.
func UploadMedicalFile(userID uint, fileName, note, base64Data string) (*models.MedicalFile, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, errors.New("file name is required")
	}

	url, err := utils.UploadBase64FileToS3(base64Data, "medical-files", fmt.Sprintf("u%d", userID))
	if err != nil {
		return nil, err
	}

	file := models.MedicalFile{
		UserID:   userID,
		FileName: fileName,
		FileURL:  url,
		Note:     note,
	}
	if err := config.DB.Create(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func ListMedicalFiles(userID uint) ([]models.MedicalFile, error) {
	var files []models.MedicalFile
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}

func DeleteMedicalFile(userID, fileID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", fileID, userID).Delete(&models.MedicalFile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("file not found")
	}
	return nil
}
