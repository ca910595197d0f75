package services

import (
	"errors"
	"strings"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"

	"github.com/google/uuid"
)

func RegisterPatient(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashedPassword,
		FullName: fullName,
		Role:     models.RolePatient,
	}
	return config.DB.Create(&user).Error
}

// RegisterDoctor creates the account plus the professional profile with
// a shareable connection code.
func RegisterDoctor(email, password, fullName, registrationID, specialization string) error {
	if strings.TrimSpace(registrationID) == "" {
		return errors.New("medical registration id is required")
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashedPassword,
		FullName: fullName,
		Role:     models.RoleDoctor,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	profile := models.DoctorProfile{
		UserID:                user.ID,
		MedicalRegistrationID: registrationID,
		Specialization:        specialization,
		DoctorCode:            strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0]),
	}
	return config.DB.Create(&profile).Error
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return "", nil, errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// ForgotPassword mails a one-time reset code.
func ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return errors.New("user not found")
	}

	code := utils.GenerateRandomToken(8)
	user.ResetCode = code
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, code)
}

func ResetPassword(email, code, newPassword string) error {
	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return errors.New("user not found")
	}
	if user.ResetCode == "" || user.ResetCode != code {
		return errors.New("invalid reset code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetCode = ""
	return config.DB.Save(&user).Error
}
