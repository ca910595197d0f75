package config

import (
	"fmt"
	"log"
	"os"

	"github.com/SBP359/MyNutriMate/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.DoctorProfile{},
		&models.DoctorConnection{},
		&models.IntakeRecord{},
		&models.DailyGoal{},
		&models.SafeFood{},
		&models.RestrictedFood{},
		&models.Insight{},
		&models.Alert{},
		&models.UserDevice{},
		&models.MedicalFile{},
		&models.GroceryItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
