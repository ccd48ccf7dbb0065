package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/andreionishchenko/Final-proekt-D/internal/handlers"
	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/middlewares"
	"github.com/andreionishchenko/Final-proekt-D/internal/repositories"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title rent-system API
// @version 1.0.0
// @description Property-rental marketplace: landlords list properties, tenants search, book and review them
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka and JWT settings.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBroker string
	kafkaTopic  string

	jwtSecretKey     string
	jwtAccessExp     time.Duration
	jwtRefreshExp    time.Duration
	authCookieSecure bool
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "rent_system")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config; an empty broker disables event publishing
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "rent-system-telemetry")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	accessExp, err := getInt("JWT_ACCESS_EXP_SECOND", "900")
	if err != nil {
		return
	}
	refreshExp, err := getInt("JWT_REFRESH_EXP_SECOND", "604800")
	if err != nil {
		return
	}
	cfg.jwtAccessExp = time.Duration(accessExp) * time.Second
	cfg.jwtRefreshExp = time.Duration(refreshExp) * time.Second
	cfg.authCookieSecure = getEnv("AUTH_COOKIE_SECURE", "true") == "true"

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for telemetry events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.jwtSecretKey, cfg.jwtAccessExp, cfg.jwtRefreshExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	propertyReadRepo := repositories.NewPropertyReadRepository(db)
	propertyWriteRepo := repositories.NewPropertyWriteRepository(db)
	bookingReadRepo := repositories.NewBookingReadRepository(db)
	bookingWriteRepo := repositories.NewBookingWriteRepository(db, middlewares.GetTxFromContext)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	searchHistoryRepo := repositories.NewSearchHistoryRepository(db)
	propertyViewRepo := repositories.NewPropertyViewRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(rdb, cfg.jwtRefreshExp)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, refreshTokenRepo)
	propertyService := services.NewPropertyService(propertyReadRepo, propertyWriteRepo, propertyViewRepo, searchHistoryRepo, kafkaWriter)
	bookingService := services.NewBookingService(bookingReadRepo, bookingWriteRepo, propertyReadRepo)
	reviewService := services.NewReviewService(reviewReadRepo, reviewWriteRepo, propertyReadRepo)
	telemetryService := services.NewTelemetryService(searchHistoryRepo, propertyViewRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokens)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService, cfg.jwtAccessExp, cfg.authCookieSecure))
		r.Post("/token/refresh", handlers.NewRefreshHandler(authService, cfg.jwtAccessExp, cfg.authCookieSecure))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/logout", handlers.NewLogoutHandler(authService, tokens, cfg.authCookieSecure))

			r.Get("/properties", handlers.NewPropertyListHandler(propertyService, tokens))
			r.Post("/properties", handlers.NewPropertyCreateHandler(propertyService, tokens))
			r.Get("/properties/{id}", handlers.NewPropertyGetHandler(propertyService, tokens))
			r.Put("/properties/{id}", handlers.NewPropertyUpdateHandler(propertyService, tokens))
			r.Patch("/properties/{id}", handlers.NewPropertyUpdateHandler(propertyService, tokens))
			r.Delete("/properties/{id}", handlers.NewPropertyDeleteHandler(propertyService, tokens))
			r.Post("/properties/{id}/increment_view", handlers.NewIncrementViewHandler(propertyService, tokens))

			r.Get("/properties/{id}/reviews", handlers.NewReviewListHandler(reviewService, tokens))
			r.Post("/properties/{id}/reviews", handlers.NewReviewCreateHandler(reviewService, tokens))

			r.Get("/bookings", handlers.NewBookingListHandler(bookingService, tokens))
			r.Put("/bookings/{id}", handlers.NewBookingUpdateHandler(bookingService, tokens))
			r.Patch("/bookings/{id}", handlers.NewBookingUpdateHandler(bookingService, tokens))

			// Booking creation runs in a per-request transaction so the
			// property lock, overlap check and insert are atomic.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/bookings", handlers.NewBookingCreateHandler(bookingService, tokens))
			})

			r.Get("/search-history", handlers.NewSearchHistoryListHandler(telemetryService, tokens))
			r.Post("/search-history", handlers.NewSearchHistoryCreateHandler(telemetryService, tokens))
			r.Get("/property-views", handlers.NewPropertyViewListHandler(telemetryService, tokens))
			r.Post("/property-views", handlers.NewPropertyViewCreateHandler(telemetryService, tokens))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
