package main

import (
	"log"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/controllers"
	"github.com/SBP359/MyNutriMate/routes"
	"github.com/SBP359/MyNutriMate/services"
	"github.com/SBP359/MyNutriMate/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Fatalf("rekognition init failed: %v", err)
	}
	vision := services.NewVisionService(rek)
	services.SetHistoryChecker(vision.HistoryChecker())

	hub := services.NewRealtimeHub()
	insight := services.NewInsightService(vision, hub)
	intake := services.NewIntakeService(insight)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	r := routes.SetupRouter(
		controllers.NewAnalysisController(vision, intake),
		controllers.NewHistoryController(intake),
		controllers.NewInsightController(insight),
		controllers.NewDeviceController(push),
		controllers.NewRealtimeController(hub),
	)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
