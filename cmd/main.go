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

	cancelReservationHandler "github.com/momonail/booking-service/internal/api/handlers/cancel_reservation"
	completeReservationHandler "github.com/momonail/booking-service/internal/api/handlers/complete_reservation"
	confirmReservationHandler "github.com/momonail/booking-service/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/momonail/booking-service/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/momonail/booking-service/internal/api/handlers/create_service"
	getAvailableSlotsHandler "github.com/momonail/booking-service/internal/api/handlers/get_available_slots"
	getDateScheduleHandler "github.com/momonail/booking-service/internal/api/handlers/get_date_schedule"
	getDaySlotsHandler "github.com/momonail/booking-service/internal/api/handlers/get_day_slots"
	getMonthAvailabilityHandler "github.com/momonail/booking-service/internal/api/handlers/get_month_availability"
	getReservationHandler "github.com/momonail/booking-service/internal/api/handlers/get_reservation"
	getSalonHandler "github.com/momonail/booking-service/internal/api/handlers/get_salon"
	getWeeklyScheduleHandler "github.com/momonail/booking-service/internal/api/handlers/get_weekly_schedule"
	listReservationsHandler "github.com/momonail/booking-service/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/momonail/booking-service/internal/api/handlers/list_services"
	setDaySlotsHandler "github.com/momonail/booking-service/internal/api/handlers/set_day_slots"
	updateDateScheduleHandler "github.com/momonail/booking-service/internal/api/handlers/update_date_schedule"
	updateServiceHandler "github.com/momonail/booking-service/internal/api/handlers/update_service"
	updateWeeklyScheduleHandler "github.com/momonail/booking-service/internal/api/handlers/update_weekly_schedule"
	"github.com/momonail/booking-service/internal/api/middleware"
	"github.com/momonail/booking-service/internal/config"
	catalogRepo "github.com/momonail/booking-service/internal/infra/storage/catalog"
	reservationRepo "github.com/momonail/booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	lineClient "github.com/momonail/booking-service/internal/integrations/line"
	"github.com/momonail/booking-service/internal/integrations/mailer"
	"github.com/momonail/booking-service/internal/notify"
	catalogService "github.com/momonail/booking-service/internal/service/catalog"
	reservationsService "github.com/momonail/booking-service/internal/service/reservations"
	scheduleService "github.com/momonail/booking-service/internal/service/schedule"
	createReservationUC "github.com/momonail/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/momonail/booking-service/internal/usecase/get_available_slots"
	"github.com/momonail/booking-service/pkg/dbmetrics"
	"github.com/momonail/booking-service/pkg/logger"
	"github.com/momonail/booking-service/pkg/metrics"
	"github.com/momonail/booking-service/pkg/simpletxmanager"
	"github.com/momonail/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml (salon_id=%d, availability_mode=%s)",
		cfg.Salon.DefaultSalonID, cfg.Salon.AvailabilityMode)

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

	// Инициализируем каналы уведомлений
	line := lineClient.NewClient(
		cfg.Line.ChannelAccessToken,
		cfg.Line.RecipientID,
		time.Duration(cfg.Line.Timeout)*time.Second,
		log,
	)
	mail := mailer.New(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From, cfg.Email.Password, log)

	// Интерфейсные значения остаются nil, если метрики выключены
	var (
		notifyMetrics      notify.Metrics
		reservationMetrics reservationsService.Metrics
		createMetrics      createReservationUC.Metrics
	)
	if cfg.Metrics.Enabled {
		notifyMetrics = metricsCollector
		reservationMetrics = metricsCollector
		createMetrics = metricsCollector
	}

	dispatcher := notify.NewDispatcher(
		line,
		mail,
		cfg.Email.AdminAddress,
		cfg.Line.Enabled,
		cfg.Email.Enabled,
		notifyMetrics,
		log,
	)
	log.Info("Notification dispatcher initialized (line=%t, email=%t)", cfg.Line.Enabled, cfg.Email.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		catalogRepository     *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, dispatcher, reservationMetrics, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, reservationRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	availabilityMode := cfg.Salon.Mode()

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		catalogRepository,
		availabilityMode,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		catalogRepository,
		txMgr,
		dispatcher,
		availabilityMode,
		createMetrics,
		log,
	)

	// Инициализируем handlers
	salonID := cfg.Salon.DefaultSalonID

	getSalon := getSalonHandler.NewHandler(catalogSvc, salonID, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, salonID, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, salonID, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, salonID, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, salonID, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, catalogSvc, salonID, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	completeReservation := completeReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, salonID, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(scheduleSvc, salonID, log)
	updateWeeklySchedule := updateWeeklyScheduleHandler.NewHandler(scheduleSvc, salonID, log)
	getDateSchedule := getDateScheduleHandler.NewHandler(scheduleSvc, salonID, log)
	updateDateSchedule := updateDateScheduleHandler.NewHandler(scheduleSvc, salonID, log)
	getDaySlots := getDaySlotsHandler.NewHandler(scheduleSvc, salonID, log)
	setDaySlots := setDaySlotsHandler.NewHandler(scheduleSvc, salonID, log)
	createService := createServiceHandler.NewHandler(catalogSvc, salonID, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, salonID, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (клиентские, без аутентификации)
	// ============================================================

	// Салон и каталог услуг
	api.HandleFunc("/salon", getSalon.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/month", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Резервирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{number}", getReservation.Handle).Methods(http.MethodGet)

	// Клиентская отмена (с проверкой дедлайна)
	api.HandleFunc("/reservations/{number}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Admin-Token header)
	// ============================================================

	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.Auth(cfg.Auth.AdminToken, log))

	// --- Резервирования ---
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{number}/confirm", confirmReservation.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/reservations/{number}/cancel", cancelReservation.HandleStaff).Methods(http.MethodPost)
	staff.HandleFunc("/reservations/{number}/complete", completeReservation.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	staff.HandleFunc("/schedule/weekly", getWeeklySchedule.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/schedule/weekly", updateWeeklySchedule.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/schedule/dates/{date}", getDateSchedule.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/schedule/dates/{date}", updateDateSchedule.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/schedule/dates/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/schedule/dates/{date}/slots", setDaySlots.Handle).Methods(http.MethodPut)

	// --- Каталог услуг ---
	staff.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

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
