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

	checkInEligibilityHandler "github.com/m04kA/SMC-InventoryService/internal/api/handlers/check_in_eligibility"
	checkRoomAvailabilityHandler "github.com/m04kA/SMC-InventoryService/internal/api/handlers/check_room_availability"
	getOccupancyDashboardHandler "github.com/m04kA/SMC-InventoryService/internal/api/handlers/get_occupancy_dashboard"
	getRoomCalendarHandler "github.com/m04kA/SMC-InventoryService/internal/api/handlers/get_room_calendar"
	searchHotelAvailabilityHandler "github.com/m04kA/SMC-InventoryService/internal/api/handlers/search_hotel_availability"
	"github.com/m04kA/SMC-InventoryService/internal/api/middleware"
	"github.com/m04kA/SMC-InventoryService/internal/config"
	bookingRepo "github.com/m04kA/SMC-InventoryService/internal/infra/storage/booking"
	catalogServiceClient "github.com/m04kA/SMC-InventoryService/internal/integrations/catalogservice"
	checkInEligibilityUC "github.com/m04kA/SMC-InventoryService/internal/usecase/check_in_eligibility"
	checkRoomAvailabilityUC "github.com/m04kA/SMC-InventoryService/internal/usecase/check_room_availability"
	getOccupancyDashboardUC "github.com/m04kA/SMC-InventoryService/internal/usecase/get_occupancy_dashboard"
	getRoomCalendarUC "github.com/m04kA/SMC-InventoryService/internal/usecase/get_room_calendar"
	searchHotelAvailabilityUC "github.com/m04kA/SMC-InventoryService/internal/usecase/search_hotel_availability"
	"github.com/m04kA/SMC-InventoryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InventoryService/pkg/logger"
	"github.com/m04kA/SMC-InventoryService/pkg/metrics"
)

// inventoryMetrics доменные счетчики, которые пишут use cases
type inventoryMetrics interface {
	RecordAvailabilityCheck(scope string, available bool)
	RecordCalendarBuild()
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
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

	log.Info("Starting SMC-InventoryService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		domainMetrics    inventoryMetrics = metrics.Noop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		domainMetrics = metricsCollector
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

	// Репозиторий бронирований (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Клиент каталога номеров
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем use cases
	clock := &getRoomCalendarUC.RealTimeProvider{}

	getRoomCalendarUseCase := getRoomCalendarUC.NewUseCase(
		bookingRepository,
		catalogClient,
		domainMetrics,
		clock,
		log,
	)
	checkRoomAvailabilityUseCase := checkRoomAvailabilityUC.NewUseCase(
		bookingRepository,
		catalogClient,
		domainMetrics,
		clock,
		log,
		cfg.Inventory.MaxStayNights,
	)
	searchHotelAvailabilityUseCase := searchHotelAvailabilityUC.NewUseCase(
		bookingRepository,
		catalogClient,
		domainMetrics,
		clock,
		log,
		cfg.Inventory.MaxStayNights,
	)
	getOccupancyDashboardUseCase := getOccupancyDashboardUC.NewUseCase(
		bookingRepository,
		catalogClient,
		log,
		cfg.Inventory.MaxDashboardDays,
	)
	checkInEligibilityUseCase := checkInEligibilityUC.NewUseCase(
		bookingRepository,
		clock,
		log,
	)

	// Инициализируем handlers
	getRoomCalendar := getRoomCalendarHandler.NewHandler(getRoomCalendarUseCase, log)
	checkRoomAvailability := checkRoomAvailabilityHandler.NewHandler(checkRoomAvailabilityUseCase, log)
	searchHotelAvailability := searchHotelAvailabilityHandler.NewHandler(searchHotelAvailabilityUseCase, log)
	getOccupancyDashboard := getOccupancyDashboardHandler.NewHandler(getOccupancyDashboardUseCase, log)
	checkInEligibility := checkInEligibilityHandler.NewHandler(checkInEligibilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.AccessLog(log))

	// --- Календарь и выбор номера ---
	api.HandleFunc("/rooms/{roomId}/calendar", getRoomCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", checkRoomAvailability.Handle).Methods(http.MethodGet)

	// --- Поиск по отелю и загрузка для администратора ---
	api.HandleFunc("/hotels/{hotelId}/availability", searchHotelAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/occupancy", getOccupancyDashboard.Handle).Methods(http.MethodGet)

	// --- Онлайн-заселение ---
	api.HandleFunc("/bookings/{bookingId}/check-in-eligibility", checkInEligibility.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
