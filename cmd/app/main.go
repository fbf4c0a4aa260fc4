package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"booking/cmd"
	apphttp "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/fcm"
	"booking/internal/adapters/out/postgres/accountrepo"
	"booking/internal/adapters/out/postgres/alertrepo"
	"booking/internal/adapters/out/postgres/bookingrepo"
	"booking/internal/adapters/out/postgres/itemrepo"
	"booking/internal/adapters/out/postgres/partnerrepo"
	"booking/internal/adapters/out/postgres/regionrepo"
	"booking/internal/adapters/out/postgres/servicerepo"
	"booking/internal/adapters/out/redisbroadcast"
	"booking/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)
	ctx := context.Background()

	db := mustConnectDB(config, logger)
	notifier := createNotifier(ctx, config, logger)
	broadcaster := createBroadcaster(config, logger)

	root := cmd.NewCompositionRoot(config, db, notifier, broadcaster, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file found, relying on the environment", "error", err)
	}

	maxOpenSOS, _ := strconv.ParseInt(os.Getenv("MAX_OPEN_SOS_ALERTS"), 10, 64)

	return cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		FCMCredentialsFile:  os.Getenv("FCM_CREDENTIALS_FILE"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		EnforceAvailability: os.Getenv("ENFORCE_AVAILABILITY") == "true",
		MaxOpenSOSAlerts:    maxOpenSOS,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustConnectDB(config cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&bookingrepo.BookingDTO{},
		&itemrepo.OrderItemDTO{},
		&partnerrepo.PartnerDTO{},
		&regionrepo.RegionDTO{},
		&servicerepo.ServiceDTO{},
		&alertrepo.AlertDTO{},
		&accountrepo.AccountDTO{},
	)
	if err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	return db
}

func createNotifier(ctx context.Context, config cmd.Config, logger *slog.Logger) ports.NotificationSender {
	if config.FCMCredentialsFile == "" {
		logger.Warn("FCM credentials not configured, push notifications disabled")
		return nil
	}

	notifier, err := fcm.NewFCMNotificationSender(ctx, config.FCMCredentialsFile, logger)
	if err != nil {
		logger.Error("failed to initialize FCM, push notifications disabled", "error", err)
		return nil
	}
	return notifier
}

func createBroadcaster(config cmd.Config, logger *slog.Logger) ports.AdminBroadcaster {
	if config.RedisAddr == "" {
		logger.Warn("Redis not configured, admin broadcasts disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	broadcaster, err := redisbroadcast.NewRedisAdminBroadcaster(client, logger)
	if err != nil {
		logger.Error("failed to initialize broadcaster, admin broadcasts disabled", "error", err)
		return nil
	}
	return broadcaster
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = apphttp.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := apphttp.NewServer(
		root.CreateCreateBookingCommandHandler(),
		root.CreateTransitionOrderItemCommandHandler(),
		root.CreateCancelBookingCommandHandler(),
		root.CreateRescheduleBookingCommandHandler(),
		root.CreateCreatePartnerCommandHandler(),
		root.CreateGetBookingQueryHandler(),
		root.CreateGetUnassignedItemsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
