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

	cancelReservationHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/create_reservation"
	createWindowHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/create_window"
	deleteReservationHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/get_availability"
	getReservationHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/get_reservations"
	getSalonWindowsHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/get_salon_windows"
	updateReservationHandler "github.com/frizerio/salon-booking-service/internal/api/handlers/update_reservation"
	"github.com/frizerio/salon-booking-service/internal/api/middleware"
	"github.com/frizerio/salon-booking-service/internal/config"
	reservationRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/reservation"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
	windowRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/window"
	workerRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/worker"
	reservationsService "github.com/frizerio/salon-booking-service/internal/service/reservations"
	windowsService "github.com/frizerio/salon-booking-service/internal/service/windows"
	createReservationUC "github.com/frizerio/salon-booking-service/internal/usecase/create_reservation"
	createWindowUC "github.com/frizerio/salon-booking-service/internal/usecase/create_window"
	getAvailabilityUC "github.com/frizerio/salon-booking-service/internal/usecase/get_availability"
	"github.com/frizerio/salon-booking-service/pkg/dbmetrics"
	"github.com/frizerio/salon-booking-service/pkg/logger"
	"github.com/frizerio/salon-booking-service/pkg/metrics"
	"github.com/frizerio/salon-booking-service/pkg/simpletxmanager"
	"github.com/frizerio/salon-booking-service/pkg/txmanager"
)

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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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
		salonRepository       *salonRepo.Repository
		workerRepository      *workerRepo.Repository
		windowRepository      *windowRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс транзакционного менеджера, общий для usecases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		salonRepository = salonRepo.NewRepository(wrappedDB)
		workerRepository = workerRepo.NewRepository(wrappedDB)
		windowRepository = windowRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		salonRepository = salonRepo.NewRepository(db)
		workerRepository = workerRepo.NewRepository(db)
		windowRepository = windowRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		windowRepository,
		salonRepository,
		workerRepository,
		txMgr,
		log,
	)
	windowSvc := windowsService.NewService(
		windowRepository,
		salonRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		salonRepository,
		workerRepository,
		windowRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		salonRepository,
		workerRepository,
		windowRepository,
		reservationRepository,
		txMgr,
		log,
	)
	createWindowUseCase := createWindowUC.NewUseCase(
		salonRepository,
		workerRepository,
		windowRepository,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getSalonWindows := getSalonWindowsHandler.NewHandler(windowSvc, log)
	createWindow := createWindowHandler.NewHandler(createWindowUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все маршруты требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	// --- Доступность и окна салона ---
	api.HandleFunc("/salons/{salonId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/windows", getSalonWindows.Handle).Methods(http.MethodGet)

	// --- Резервации ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Управление окнами (для администраторов) ---
	api.HandleFunc("/windows", createWindow.Handle).Methods(http.MethodPost)

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
