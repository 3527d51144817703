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

	callNextWaitlistHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/call_next_waitlist"
	cancelWaitlistHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/cancel_waitlist"
	confirmWaitlistHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/confirm_waitlist"
	createBookingHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/get_available_slots"
	getWaitlistEntryHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/get_waitlist_entry"
	joinWaitlistHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/join_waitlist"
	validateBookingUpdateHandler "github.com/tablerow/FRB-ReservationService/internal/api/handlers/validate_booking_update"
	"github.com/tablerow/FRB-ReservationService/internal/api/middleware"
	"github.com/tablerow/FRB-ReservationService/internal/config"
	bookingRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/booking"
	customerRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/customer"
	restaurantRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/table"
	waitlistRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/waitlist"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
	waitlistService "github.com/tablerow/FRB-ReservationService/internal/service/waitlist"
	confirmWaitlistUC "github.com/tablerow/FRB-ReservationService/internal/usecase/confirm_waitlist"
	createBookingUC "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/tablerow/FRB-ReservationService/internal/usecase/get_available_slots"
	joinWaitlistUC "github.com/tablerow/FRB-ReservationService/internal/usecase/join_waitlist"
	validateBookingUpdateUC "github.com/tablerow/FRB-ReservationService/internal/usecase/validate_booking_update"
	"github.com/tablerow/FRB-ReservationService/pkg/logger"
	"github.com/tablerow/FRB-ReservationService/pkg/metrics"
	"github.com/tablerow/FRB-ReservationService/pkg/txmanager"
)

// Notifier локальный интерфейс для выбора между AMQP издателем и заглушкой
type Notifier interface {
	ReservationConfirmed(ctx context.Context, event notify.ReservationConfirmedEvent)
	WaitlistCalled(ctx context.Context, event notify.WaitlistCalledEvent)
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

	log.Info("Starting FRB-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (если кеш включен)
	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()
		log.Info("Response cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем издателя уведомлений (если брокер включен)
	var notifier Notifier = notify.Noop{}
	if cfg.Broker.Enabled {
		publisher := notify.NewPublisher(cfg.Broker.URL, log, metricsCollector)
		defer publisher.Close()
		notifier = publisher
		log.Info("Notification publisher enabled (broker=%s)", cfg.Broker.URL)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	tableRepository := tableRepo.NewRepository(db)
	restaurantRepository := restaurantRepo.NewRepository(db)
	customerRepository := customerRepo.NewRepository(db)
	waitlistRepository := waitlistRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tableRepository,
		restaurantRepository,
		customerRepository,
		txMgr,
		notifier,
		log,
	)

	validateBookingUpdateUseCase := validateBookingUpdateUC.NewUseCase(
		bookingRepository,
		createBookingUseCase,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		tableRepository,
		restaurantRepository,
		bookingRepository,
		log,
	)

	joinWaitlistUseCase := joinWaitlistUC.NewUseCase(
		waitlistRepository,
		restaurantRepository,
		customerRepository,
		txMgr,
		log,
	)

	confirmWaitlistUseCase := confirmWaitlistUC.NewUseCase(
		waitlistRepository,
		bookingRepository,
		tableRepository,
		createBookingUseCase,
		txMgr,
		notifier,
		log,
	)

	// Инициализируем сервисы
	waitlistSvc := waitlistService.NewService(waitlistRepository, notifier, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	validateBookingUpdate := validateBookingUpdateHandler.NewHandler(validateBookingUpdateUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	joinWaitlist := joinWaitlistHandler.NewHandler(joinWaitlistUseCase, log)
	getWaitlistEntry := getWaitlistEntryHandler.NewHandler(waitlistSvc, log)
	cancelWaitlist := cancelWaitlistHandler.NewHandler(waitlistSvc, log)
	callNextWaitlist := callNextWaitlistHandler.NewHandler(waitlistSvc, log)
	confirmWaitlist := confirmWaitlistHandler.NewHandler(confirmWaitlistUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты стола на дату; ответ кешируется в Redis
	public := api.PathPrefix("").Subrouter()
	if cfg.Cache.Enabled {
		public.Use(middleware.ResponseCache(rdb, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log))
	}
	public.HandleFunc("/tables/{id}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Чтение записи листа ожидания с актуальной позицией
	api.HandleFunc("/waitlist/{id}", getWaitlistEntry.Handle).Methods(http.MethodGet)

	// Вызов следующего из очереди (для администратора ресторана)
	api.HandleFunc("/restaurants/{id}/waitlist/call-next", callNextWaitlist.Handle).Methods(http.MethodPost)

	// Подтверждение записи листа ожидания в бронирование
	api.HandleFunc("/waitlist/{id}/confirm", confirmWaitlist.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Проверка конфликтов обновления бронирования
	protected.HandleFunc("/bookings/{id}/validate", validateBookingUpdate.Handle).Methods(http.MethodPost)

	// Постановка в лист ожидания
	protected.HandleFunc("/waitlist", joinWaitlist.Handle).Methods(http.MethodPost)

	// Отмена записи листа ожидания
	protected.HandleFunc("/waitlist/{id}", cancelWaitlist.Handle).Methods(http.MethodDelete)

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
