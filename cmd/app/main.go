package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"laundryops/cmd"
	httpin "laundryops/internal/adapters/in/http"
	"laundryops/internal/adapters/out/postgres/branchrepo"
	"laundryops/internal/adapters/out/postgres/orderrepo"
	"laundryops/internal/adapters/out/postgres/staffrepo"
	"laundryops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreateAssignReceivedOrderCommandHandler(),
		configs.AssignmentJobSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments, where the
	// environment is already populated.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     mustEnv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     mustEnv("DB_USER"),
		DBPassword: mustEnv("DB_PASSWORD"),
		DBName:     mustEnv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		AssignmentJobSchedule: envOr("ASSIGNMENT_JOB_SCHEDULE", "* * * * * *"),

		ClassifierValueCeiling:    envInt64("CLASSIFIER_VALUE_CEILING"),
		ClassifierWeightCeilingKg: envFloat("CLASSIFIER_WEIGHT_CEILING_KG"),
		ClassifierGarmentCeiling:  int(envInt64("CLASSIFIER_GARMENT_CEILING")),
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64(key string) int64 {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, value)
	}
	return parsed
}

func envFloat(key string) float64 {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Environment variable %s must be a number, got %q", key, value)
	}
	return parsed
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&branchrepo.BranchDTO{},
		&staffrepo.AssignmentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.GarmentDTO{},
		&orderrepo.StageHandlerDTO{},
		&orderrepo.ClassificationOverrideDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.ServerHandlers{
		CreateBranch:         root.CreateCreateBranchCommandHandler(),
		CreateOrder:          root.CreateCreateOrderCommandHandler(),
		RouteOrder:           root.CreateRouteOrderCommandHandler(),
		DispatchTransfer:     root.CreateDispatchTransferCommandHandler(),
		MarkReceived:         root.CreateMarkOrderReceivedCommandHandler(),
		AssignWorkstation:    root.CreateAssignWorkstationCommandHandler(),
		AutoAssign:           root.CreateAutoAssignWorkstationCommandHandler(),
		StartProcessing:      root.CreateStartProcessingCommandHandler(),
		CompleteProcessing:   root.CreateCompleteProcessingCommandHandler(),
		RecordGarmentWork:    root.CreateRecordGarmentWorkCommandHandler(),
		ClassifyOrder:        root.CreateClassifyOrderCommandHandler(),
		OverrideClass:        root.CreateOverrideClassificationCommandHandler(),
		CreateAssignment:     root.CreateCreateWorkstationAssignmentCommandHandler(),
		DeactivateAssignment: root.CreateDeactivateWorkstationAssignmentCommandHandler(),

		PendingRouting:   root.CreateGetOrdersPendingRoutingQueryHandler(),
		InTransit:        root.CreateGetOrdersInTransitQueryHandler(),
		ByStage:          root.CreateGetOrdersByStageQueryHandler(),
		ByStaff:          root.CreateGetOrdersByStaffQueryHandler(),
		ReadyForReturn:   root.CreateGetOrdersReadyForReturnQueryHandler(),
		QueueDepth:       root.CreateGetBranchQueueDepthQueryHandler(),
		StaffPerformance: root.CreateGetStaffPerformanceQueryHandler(),
		ValidateSchedule: root.CreateValidateDeliveryScheduleQueryHandler(),
		ClassifyPreview:  root.CreateClassifyDeliveryQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
