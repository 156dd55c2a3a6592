package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"shop/cmd"
	_ "shop/docs"
	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/rabbitmq"
	"shop/internal/core/ports"
	"shop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderAge = 30 * time.Minute

//	@title			Shop Order Service API
//	@version		1.0
//	@description	Order management service: orders, items and lifecycle transitions.
//	@BasePath		/api/v1
func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	publisher := connectPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		staleOrderAge(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:      goDotEnvVariable("RABBITMQ_URL"),
		RabbitMQExchange: goDotEnvVariable("RABBITMQ_EXCHANGE"),
		StaleOrderAge:    goDotEnvVariable("STALE_ORDER_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// connectPublisher returns nil when no broker is configured. The service
// stays fully functional; lifecycle events are simply not emitted.
func connectPublisher(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL not set, order events will not be published")
		return nil
	}

	conn, err := rabbitmq.NewConnection(configs.RabbitMQURL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	exchange := configs.RabbitMQExchange
	if exchange == "" {
		exchange = "orders"
	}

	publisher, err := rabbitmq.NewPublisher(conn, exchange)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}

	return publisher
}

func staleOrderAge(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.StaleOrderAge == "" {
		return defaultStaleOrderAge
	}

	age, err := time.ParseDuration(configs.StaleOrderAge)
	if err != nil || age <= 0 {
		logger.Warn("Invalid STALE_ORDER_AGE, using default",
			"value", configs.StaleOrderAge, "default", defaultStaleOrderAge)
		return defaultStaleOrderAge
	}

	return age
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
