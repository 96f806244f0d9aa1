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

	checkSlotHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/check_slot"
	createAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_appointment"
	deleteServiceHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_service"
	deleteWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_working_hours"
	getAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_dates"
	getDaySlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_slots"
	getServiceHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_service"
	getWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_working_hours"
	listServicesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_services"
	listStaffAppointmentsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_staff_appointments"
	updateAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_appointment"
	updateServiceHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_service"
	updateWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
	workingHoursRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/workinghours"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	servicesService "github.com/m04kA/SMC-ScheduleService/internal/service/services"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slotguard"
	workingHoursService "github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
	checkSlotUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_slot"
	createAppointmentUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
	getDaySlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
	updateAppointmentUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from %s", configPath)

	defaultHours, err := cfg.Schedule.WorkingHours()
	if err != nil {
		log.Fatal("Invalid default working hours: %v", err)
	}
	log.Info("Schedule: hours %s-%s, interval=%dm, default duration=%dm, window=%d days, policy=%s",
		defaultHours.Start, defaultHours.End, defaultHours.IntervalMinutes,
		cfg.Schedule.DefaultServiceDurationMinutes, cfg.Schedule.WindowDays, cfg.Schedule.Policy())

	// Метрики выключены -> nil, все методы *metrics.Metrics это допускают
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.Schedule.StoreTimeout())
	err = wrappedDB.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	workingHoursRepository := workingHoursRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	workingHoursSvc := workingHoursService.NewService(
		workingHoursRepository,
		staffRepository,
		defaultHours,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	servicesSvc := servicesService.NewService(serviceRepository, staffRepository, log)
	guard := slotguard.NewGuard(
		appointmentRepository,
		cfg.Schedule.Policy(),
		cfg.Schedule.DefaultServiceDurationMinutes,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		workingHoursSvc,
		getDaySlotsUC.Settings{
			Policy:                        cfg.Schedule.Policy(),
			DefaultServiceDurationMinutes: cfg.Schedule.DefaultServiceDurationMinutes,
			FitServiceBeforeClose:         cfg.Schedule.FitServiceBeforeClose,
			StoreTimeout:                  cfg.Schedule.StoreTimeout(),
		},
		metricsCollector,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		getDaySlotsUseCase,
		txMgr,
		cfg.Schedule.WindowDays,
		cfg.Schedule.MaxWindowDays,
		&getAvailableDatesUC.RealTimeProvider{},
		metricsCollector,
		log,
	)
	checkSlotUseCase := checkSlotUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		cfg.Schedule.StoreTimeout(),
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		serviceRepository,
		guard,
		txMgr,
		cfg.Schedule.DefaultServiceDurationMinutes,
		cfg.Schedule.StoreTimeout(),
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		guard,
		txMgr,
		cfg.Schedule.DefaultServiceDurationMinutes,
		cfg.Schedule.StoreTimeout(),
		log,
	)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	listStaffAppointments := listStaffAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	createService := createServiceHandler.NewHandler(servicesSvc, log)
	getService := getServiceHandler.NewHandler(servicesSvc, log)
	listServices := listServicesHandler.NewHandler(servicesSvc, log)
	updateService := updateServiceHandler.NewHandler(servicesSvc, log)
	deleteService := deleteServiceHandler.NewHandler(servicesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность сотрудника
	api.HandleFunc("/staff/{staffId}/availability/slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/availability/check", checkSlot.Handle).Methods(http.MethodGet)

	// Действующие рабочие часы
	api.HandleFunc("/staff/{staffId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/staff/{staffId}/appointments", listStaffAppointments.Handle).Methods(http.MethodGet)

	// --- Рабочие часы сотрудника ---
	protected.HandleFunc("/staff/{staffId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/working-hours", deleteWorkingHours.Handle).Methods(http.MethodDelete)

	// --- Услуги сотрудника ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
