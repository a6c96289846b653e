package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/create_booking"
	editAvailabilityHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/edit_availability"
	getAvailabilityHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/get_availability"
	getAvailableDatesHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/get_available_dates"
	getBookingHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/get_booking"
	getPatientBookingsHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/get_patient_bookings"
	getPrescriberBookingsHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/get_prescriber_bookings"
	getTimeSlotsHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/get_time_slots"
	updateAvailabilityHandler "github.com/m04kA/prescriber-availability/internal/api/handlers/update_availability"
	"github.com/m04kA/prescriber-availability/internal/api/middleware"
	"github.com/m04kA/prescriber-availability/internal/config"
	"github.com/m04kA/prescriber-availability/internal/engine/normalizer"
	"github.com/m04kA/prescriber-availability/internal/engine/projector"
	availabilityCache "github.com/m04kA/prescriber-availability/internal/infra/cache/availability"
	availabilityRepo "github.com/m04kA/prescriber-availability/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/prescriber-availability/internal/infra/storage/booking"
	userServiceClient "github.com/m04kA/prescriber-availability/internal/integrations/userservice"
	availabilityService "github.com/m04kA/prescriber-availability/internal/service/availability"
	bookingsService "github.com/m04kA/prescriber-availability/internal/service/bookings"
	createBookingUC "github.com/m04kA/prescriber-availability/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/m04kA/prescriber-availability/internal/usecase/get_available_dates"
	getTimeSlotsUC "github.com/m04kA/prescriber-availability/internal/usecase/get_time_slots"
	"github.com/m04kA/prescriber-availability/pkg/logger"
	"github.com/m04kA/prescriber-availability/pkg/metrics"
	"github.com/m04kA/prescriber-availability/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting prescriber-availability...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены); nil *Metrics - no-op
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к redis (кеш расписаний и rate limit)
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// сервис работает и без кеша: ошибки кеша не прерывают запросы
			log.Warn("Redis ping failed (addr=%s): %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
		cancelPing()
	} else {
		log.Info("Redis disabled: availability cache and rate limiting are off")
	}

	// Репозитории и транзакции
	availabilityRepository := availabilityRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Движок расписаний
	availabilityNormalizer := normalizer.New(normalizer.Options{
		DefaultStartTime: cfg.Availability.DefaultStartTime,
		DefaultEndTime:   cfg.Availability.DefaultEndTime,
	})
	slotProjector := projector.New(projector.Config{
		HorizonDays:      cfg.Availability.HorizonDays,
		IncrementMinutes: cfg.Availability.IncrementMinutes,
	}, &projector.RealTimeProvider{})
	log.Info("Projection configured (horizon=%d days, increment=%d min)",
		cfg.Availability.HorizonDays, cfg.Availability.IncrementMinutes)

	// Кеш передаётся как интерфейс: без redis сервис получает nil
	var cache availabilityService.AvailabilityCache
	if rdb != nil {
		cache = availabilityCache.NewCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second, cfg.Redis.KeyPrefix)
	}

	// Клиент UserService (опционально)
	var patientClient createBookingUC.UserServiceClient
	if cfg.UserService.URL != "" {
		patientClient = userServiceClient.NewClient(
			cfg.UserService.URL,
			time.Duration(cfg.UserService.Timeout)*time.Second,
			log,
		)
		log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		cache,
		availabilityNormalizer,
		txMgr,
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		availabilitySvc,
		slotProjector,
		metricsCollector,
		log,
	)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		availabilitySvc,
		bookingRepository,
		slotProjector,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		patientClient,
		slotProjector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	editAvailability := editAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPatientBookings := getPatientBookingsHandler.NewHandler(bookingSvc, log)
	getPrescriberBookings := getPrescriberBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание и его проекция
	api.HandleFunc("/prescribers/{prescriberId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prescribers/{prescriberId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prescribers/{prescriberId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Шаг редактора черновика (ничего не сохраняет)
	api.HandleFunc("/availability/edit", editAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание специалиста ---
	protected.HandleFunc("/prescribers/{prescriberId}/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/prescribers/{prescriberId}/bookings", getPrescriberBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	createBookingRoute := http.Handler(http.HandlerFunc(createBooking.Handle))
	if rdb != nil && cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.PerMinute, time.Minute,
			cfg.RateLimit.Prefix, cfg.RateLimit.FailOpen, log)
		createBookingRoute = limiter.Middleware(createBookingRoute)
		log.Info("Booking rate limit enabled (%d/min, fail_open=%t)", cfg.RateLimit.PerMinute, cfg.RateLimit.FailOpen)
	}
	protected.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пациента
	protected.HandleFunc("/patients/{patientId}/bookings", getPatientBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
