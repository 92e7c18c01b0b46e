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

	cancelBookingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/create_booking"
	deleteBusinessHoursHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/delete_business_hours"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_available_slots"
	getAvailableSlotsRangeHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_available_slots_range"
	getBookingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_business_hours"
	getLocationFacilitiesHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_location_facilities"
	getUserBookingsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_user_bookings"
	updateBusinessHoursHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/update_business_hours"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/config"
	bookingRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	hoursRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/hours"
	bookingsService "github.com/m04kA/SMC-FacilityService/internal/service/bookings"
	facilitiesService "github.com/m04kA/SMC-FacilityService/internal/service/facilities"
	hoursService "github.com/m04kA/SMC-FacilityService/internal/service/hours"
	createBookingUC "github.com/m04kA/SMC-FacilityService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots"
	getAvailableSlotsRangeUC "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots_range"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/logger"
	"github.com/m04kA/SMC-FacilityService/pkg/metrics"
	"github.com/m04kA/SMC-FacilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-FacilityService/pkg/txmanager"
)

// TxManager объединяет режимы транзакций, которые нужны сервисам и usecases
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-FacilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		facilityRepository *facilityRepo.Repository
		hoursRepository    *hoursRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	hoursResolver := hoursService.NewResolver(facilityRepository, hoursRepository, log)
	hoursSvc := hoursService.NewService(facilityRepository, hoursRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	facilitySvc := facilitiesService.NewService(facilityRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		hoursResolver,
		log,
	)

	getAvailableSlotsRangeUseCase := getAvailableSlotsRangeUC.NewUseCase(
		getAvailableSlotsUseCase,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		hoursResolver,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableSlotsRange := getAvailableSlotsRangeHandler.NewHandler(getAvailableSlotsRangeUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursResolver, log)
	getLocationFacilities := getLocationFacilitiesHandler.NewHandler(facilitySvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	deleteBusinessHours := deleteBusinessHoursHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты бронирования объекта на один день
	api.HandleFunc("/facilities/{facilityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Слоты бронирования объекта на диапазон дней
	api.HandleFunc("/facilities/{facilityId}/available-slots/range",
		getAvailableSlotsRange.Handle).Methods(http.MethodGet)

	// Эффективное расписание работы объекта
	api.HandleFunc("/facilities/{facilityId}/business-hours",
		getBusinessHours.Handle).Methods(http.MethodGet)

	// Активные объекты локации
	api.HandleFunc("/locations/{locationId}/facilities",
		getLocationFacilities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписаниями (для менеджеров платформы) ---
	// Замена недельного расписания уровня иерархии
	protected.HandleFunc("/business-hours/{tier}/{ownerId}", updateBusinessHours.Handle).Methods(http.MethodPut)

	// Удаление расписания уровня иерархии
	protected.HandleFunc("/business-hours/{tier}/{ownerId}", deleteBusinessHours.Handle).Methods(http.MethodDelete)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
