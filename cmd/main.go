package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/sendgrid/sendgrid-go"
	twilio "github.com/twilio/twilio-go"

	"github.com/quantumhotel/hotel-service/internal/app"
	"github.com/quantumhotel/hotel-service/internal/config"
	"github.com/quantumhotel/hotel-service/internal/controllers"
	"github.com/quantumhotel/hotel-service/internal/events"
	"github.com/quantumhotel/hotel-service/internal/middleware"
	"github.com/quantumhotel/hotel-service/internal/repositories"
	"github.com/quantumhotel/hotel-service/internal/routes"
	"github.com/quantumhotel/hotel-service/internal/services"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.AppName)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize hotel-service:", err)
	}
	defer application.Close()

	ctx := context.Background()
	if err := app.EnsureSchema(ctx, application.DB); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to ensure database schema")
	}

	catRepo := repositories.NewCategoryRepository(application.DB)
	unitRepo := repositories.NewUnitRepository(application.DB)
	amenityRepo := repositories.NewAmenityRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	resRepo := repositories.NewReservationRepository(application.DB)

	if err := app.EnsureSystemUser(ctx, userRepo); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to ensure system user")
	}
	if cfg.SeedDemoData {
		if err := app.SeedDemoData(ctx, catRepo, unitRepo, amenityRepo, userRepo); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AppName)
		utils.Logger.Info("Reservation event publishing enabled")
	} else {
		utils.Logger.Info("KAFKA_BROKERS not set; reservation events disabled")
	}
	defer func() { _ = publisher.Close() }()

	twClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	sgClient := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	notifier := services.NewNotificationService(
		sgClient,
		twClient,
		cfg.SendgridFromEmail,
		cfg.TwilioFromPhone,
		cfg.OrganizationName,
		cfg.SendgridSandboxMode,
	)

	cache := services.NewAvailabilityCache(application.Redis)
	availabilityService := services.NewAvailabilityService(catRepo, unitRepo, resRepo, cache)
	reservationService := services.NewReservationService(
		resRepo, catRepo, unitRepo, amenityRepo, userRepo,
		availabilityService, notifier, publisher,
	)
	catalogService := services.NewCatalogService(catRepo, unitRepo, amenityRepo)
	schedulerService := services.NewSchedulerService(
		resRepo, userRepo, notifier, publisher, app.SystemUserID,
	)

	healthController := controllers.NewHealthController(application)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	catalogController := controllers.NewCatalogController(catalogService)
	reservationsController := controllers.NewReservationsController(reservationService)
	adminController := controllers.NewAdminReservationsController(reservationService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Availability, availabilityController.SearchHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Categories, catalogController.ListCategoriesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.CategoryByID, catalogController.GetCategoryHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Amenities, catalogController.ListAmenitiesHandler).Methods(http.MethodGet)

	// Guest
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	secured.HandleFunc(routes.Reservations, reservationsController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ReservationsMe, reservationsController.ListMineHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReservationByID, reservationsController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReservationByID, reservationsController.PatchHandler).Methods(http.MethodPatch)

	// Back office
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.AuthMiddleware(cfg.RSAPublicKey), middleware.StaffAuthMiddleware())
	admin.HandleFunc(routes.AdminReservations, adminController.ListHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminReservationByID, adminController.GetHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminReservationByID, adminController.PatchHandler).Methods(http.MethodPatch)
	admin.HandleFunc(routes.AdminReservationConfirm, adminController.ConfirmHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminReservationReject, adminController.RejectHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminUnits, catalogController.ListUnitsHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminUnitByID, catalogController.PatchUnitHandler).Methods(http.MethodPatch)

	c := cron.New()
	if _, cronErr := c.AddFunc("10 0 * * *", func() {
		schedulerService.RetireStalePending(context.Background())
	}); cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule stale reservation sweep")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("hotel-service failed to start:", err)
	}
}
