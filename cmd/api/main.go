package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sensor-telemetry-service/config"
	"sensor-telemetry-service/internal/auth"
	readingsHttp "sensor-telemetry-service/internal/readings/adapters/http/fiber"
	readingsRepoPg "sensor-telemetry-service/internal/readings/adapters/postgres"
	readingsUsecase "sensor-telemetry-service/internal/readings/core/usecase"
	wsAdapter "sensor-telemetry-service/internal/realtime/adapters/ws"
	"sensor-telemetry-service/internal/realtime/hub"
	statsHttp "sensor-telemetry-service/internal/stats/adapters/http/fiber"
	statsRepoPg "sensor-telemetry-service/internal/stats/adapters/postgres"
	statsUsecase "sensor-telemetry-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "sensor-telemetry-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load(".")
	if err != nil {
		log.Printf("error loading config: %v, using defaults", err)
		cfg = config.Default()
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	readingsDB := readingsRepoPg.NewSQLDB(db)
	statsDB := statsRepoPg.NewSQLDB(db)

	// Repositories
	readingRepository := readingsRepoPg.NewReadingRepository(readingsDB)
	statsRepository := statsRepoPg.NewStatsRepository(statsDB)

	if err := readingRepository.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// Subscriber registry, owned here and handed to ingestion by reference
	registry := hub.New()

	// Usecases
	ingestUC := readingsUsecase.NewIngestReadingUseCase(readingRepository, registry)
	queryUC := readingsUsecase.NewQueryReadingsUseCase(readingRepository)
	statsUC := statsUsecase.NewGetStatsUseCase(statsRepository)

	// HTTP (Fiber) app + middleware
	app := fiber.New()
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use("/api", limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	authorizer := auth.NewJWTAuthorizer(cfg.Auth.JWTSecret)
	guard := auth.Middleware(authorizer)

	// sensor endpoints
	readingHandler := readingsHttp.NewReadingHandler(ingestUC, queryUC)
	statsHandler := statsHttp.NewStatsHandler(statsUC)

	sensors := app.Group("/api/sensors", guard)
	sensors.Post("/", readingHandler.CreateReading)
	sensors.Post("/create", readingHandler.CreateReading)
	sensors.Get("/recent", readingHandler.GetRecent)
	sensors.Get("/all", readingHandler.GetAll)
	sensors.Get("/range", readingHandler.GetRange)
	sensors.Get("/stats", statsHandler.GetStats)
	sensors.Get("/hourly", statsHandler.GetHourly)
	sensors.Get("/latest", readingHandler.GetLatest)

	// push channel
	wsHandler := wsAdapter.NewHandler(registry, time.Duration(cfg.Realtime.WriteTimeoutMillis)*time.Millisecond)
	app.Use("/ws", guard, wsAdapter.Upgrade)
	app.Get("/ws", websocket.New(wsHandler.Serve))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
