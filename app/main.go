package main

import (
	"os"
	"os/signal"
	"schoolhealth/config"
	"schoolhealth/domain"
	"schoolhealth/services/health/delivery"
	"schoolhealth/services/health/repository"
	"schoolhealth/services/health/usecase"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	meowClient, smtpAuth, smtpAddr, schoolPhone, emailSender, err := config.InitSender()
	if err != nil {
		log.Fatalf("Failed to init sender: %v", err)
		return
	}

	timeout := 10 * time.Second

	senderRepo := repository.NewSenderRepository(db, smtpAuth, *smtpAddr, *schoolPhone, *emailSender, meowClient)
	studentRepo := repository.NewStudentRepository(db)
	campaignRepo := repository.NewCampaignRepository(db, senderRepo, studentRepo)
	eventRepo := repository.NewEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	authRepo := repository.NewAuthRepository(db)

	campaignUC := usecase.NewCampaignUseCase(campaignRepo, timeout)
	eventUC := usecase.NewEventUseCase(eventRepo, timeout)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	studentUC := usecase.NewStudentUseCase(studentRepo, timeout)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := usecase.NewAuthUseCase(authRepo)

	delivery.NewAuthDeliveryDeploy(app, authUC)
	delivery.NewUserDeliveryDeploy(app, userUC)
	delivery.NewStudentDeliveryDeploy(app, studentUC)
	delivery.NewNotificationDeliveryDeploy(app, notificationUC)

	delivery.NewCampaignDeliveryDeploy(app, campaignUC, "/health-examinations", domain.CampaignHealthExamination)
	delivery.NewEventDeliveryDeploy(app, eventUC, "/health-examinations", domain.CampaignHealthExamination)
	delivery.NewCampaignDeliveryDeploy(app, campaignUC, "/vaccination-schedules", domain.CampaignVaccination)
	delivery.NewEventDeliveryDeploy(app, eventUC, "/vaccination-schedules", domain.CampaignVaccination)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
