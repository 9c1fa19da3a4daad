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

	clearBookingsHandler "github.com/m04kA/SMC-TimeslotsService/internal/api/handlers/clear_bookings"
	getSheetHandler "github.com/m04kA/SMC-TimeslotsService/internal/api/handlers/get_sheet"
	pingHandler "github.com/m04kA/SMC-TimeslotsService/internal/api/handlers/ping"
	signupHandler "github.com/m04kA/SMC-TimeslotsService/internal/api/handlers/signup"
	"github.com/m04kA/SMC-TimeslotsService/internal/api/middleware"
	"github.com/m04kA/SMC-TimeslotsService/internal/config"
	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
	slotsRepo "github.com/m04kA/SMC-TimeslotsService/internal/infra/storage/slots"
	gridService "github.com/m04kA/SMC-TimeslotsService/internal/service/grid"
	clearBookingsUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/clear_bookings"
	getSheetUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/get_sheet"
	signupUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/signup"
	"github.com/m04kA/SMC-TimeslotsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeslotsService/pkg/logger"
	"github.com/m04kA/SMC-TimeslotsService/pkg/metrics"
	"github.com/m04kA/SMC-TimeslotsService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TimeslotsService/pkg/txmanager"
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

	log.Info("Starting SMC-TimeslotsService...")
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

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и менеджер транзакций (с метриками или без)
	var (
		slotRepository *slotsRepo.Repository
		txMgr          TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Генерируем определения слотов: окно работы разбивается на
	// получасовые слоты один раз при старте
	slotDefs := domain.GenerateSlotDefs(domain.OpenHour, domain.CloseHour, domain.SlotLengthHours)
	log.Info("Generated %d slot definitions per day (%.1f - %.1f)",
		len(slotDefs), domain.OpenHour, domain.CloseHour)

	// Инициализируем календарную сетку
	grid := gridService.NewService(slotRepository, slotDefs, log)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	if err := grid.Initialize(initCtx); err != nil {
		cancelInit()
		// Несовпадение количества слотов - фатальная ошибка консистентности:
		// отказываемся обслуживать запросы поверх неконсистентной сетки
		log.Fatal("Failed to initialize calendar grid: %v", err)
	}
	cancelInit()

	// Инициализируем use cases
	getSheetUseCase := getSheetUC.NewUseCase(grid, log)
	signupUseCase := signupUC.NewUseCase(grid, txMgr, log)
	clearBookingsUseCase := clearBookingsUC.NewUseCase(grid, txMgr, log)

	// Инициализируем handlers
	ping := pingHandler.NewHandler()
	getSheet := getSheetHandler.NewHandler(getSheetUseCase, log)
	signup := signupHandler.NewHandler(signupUseCase, getSheetUseCase, log)
	clearBookings := clearBookingsHandler.NewHandler(clearBookingsUseCase, getSheetUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/ping", ping.Handle).Methods(http.MethodGet)

	// Текущее состояние листа записи
	api.HandleFunc("/sheet", getSheet.Handle).Methods(http.MethodGet)

	// Запись участника на слоты
	api.HandleFunc("/signup", signup.Handle).Methods(http.MethodPost)

	// Снятие всех бронирований участника
	api.HandleFunc("/clear", clearBookings.Handle).Methods(http.MethodPost)

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
