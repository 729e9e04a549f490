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

	createReservationHandler "github.com/sansan-reserve/booking-service/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/sansan-reserve/booking-service/internal/api/handlers/get_availability"
	getMenusHandler "github.com/sansan-reserve/booking-service/internal/api/handlers/get_menus"
	listReservationsHandler "github.com/sansan-reserve/booking-service/internal/api/handlers/list_reservations"
	"github.com/sansan-reserve/booking-service/internal/api/middleware"
	"github.com/sansan-reserve/booking-service/internal/config"
	"github.com/sansan-reserve/booking-service/internal/domain"
	"github.com/sansan-reserve/booking-service/internal/infra/mail"
	"github.com/sansan-reserve/booking-service/internal/infra/storage/reservationlog"
	calendarClient "github.com/sansan-reserve/booking-service/internal/integrations/calendarservice"
	menusService "github.com/sansan-reserve/booking-service/internal/service/menus"
	createReservationUC "github.com/sansan-reserve/booking-service/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/sansan-reserve/booking-service/internal/usecase/get_availability"
	"github.com/sansan-reserve/booking-service/pkg/logger"
	"github.com/sansan-reserve/booking-service/pkg/metrics"
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

	log.Info("Starting sansan-reserve booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс студии: фиксированное смещение из конфига,
	// таймзона процесса не участвует в расчетах
	loc := time.FixedZone(cfg.Studio.TimezoneName, cfg.Studio.UTCOffsetHours*3600)
	log.Info("Studio timezone: %s (UTC%+d)", cfg.Studio.TimezoneName, cfg.Studio.UTCOffsetHours)

	hours := domain.BusinessHours{
		StartHour:           cfg.Studio.OpenHour,
		EndHour:             cfg.Studio.CloseHour,
		SlotIntervalMinutes: cfg.Studio.SlotIntervalMinutes,
	}
	if err := hours.Validate(); err != nil {
		log.Fatal("Invalid business hours configuration: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сверяем копию каталога меню из конфига со встроенной.
	// Расхождение — ошибка конфигурации, сервис не стартует
	menusSvc := menusService.NewService(log)
	if err := menusSvc.VerifyMirror(menuMirror(cfg.Menus)); err != nil {
		log.Fatal("Menu catalog mirror mismatch: %v", err)
	}

	// Клиент календарного сервиса — единственного источника правды о занятости
	calendar := calendarClient.NewClient(
		cfg.Calendar.BaseURL,
		cfg.Calendar.CalendarID,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
		upstreamObserver(metricsCollector),
	)
	log.Info("Calendar client initialized (base_url=%s, calendar_id=%s, timeout=%ds)",
		cfg.Calendar.BaseURL, cfg.Calendar.CalendarID, cfg.Calendar.Timeout)

	// Журнал бронирований в PostgreSQL (опционален, его отказ не блокирует бронирования)
	var journal createReservationUC.JournalRepository
	var journalRepo *reservationlog.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journalRepo = reservationlog.NewRepository(db)
		journal = journalRepo
	} else {
		log.Info("Reservation journal disabled")
	}

	// Отправка писем-подтверждений (опциональна)
	var mailSender createReservationUC.MailSender
	if cfg.Mail.Enabled {
		mailSender = mail.NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.From)
		log.Info("Mail sender initialized (host=%s, port=%d, from=%s)",
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.From)
	} else {
		log.Info("Confirmation mail disabled")
	}

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(calendar, hours, loc, log)
	createReservationUseCase := createReservationUC.NewUseCase(calendar, journal, mailSender, loc, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, loc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, cfg.Auth.APIToken, loc, log)
	getMenus := getMenusHandler.NewHandler(menusSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Слоты доступности для записи
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования (токен проверяется внутри handler)
	api.HandleFunc("/reserve", createReservation.Handle).Methods(http.MethodPost)

	// Каталог планов съемки
	api.HandleFunc("/menus", getMenus.Handle).Methods(http.MethodGet)

	// Операторский список бронирований (только при включенном журнале)
	if journalRepo != nil {
		listReservations := listReservationsHandler.NewHandler(journalRepo, cfg.Auth.APIToken, loc, log)
		api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
		log.Info("Reservation listing endpoint exposed at /api/v1/reservations")
	}

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

// menuMirror конвертирует секцию [menus] конфига в формат сервиса каталога
func menuMirror(src map[string]config.MenuConfig) map[string]menusService.MirrorEntry {
	mirror := make(map[string]menusService.MirrorEntry, len(src))
	for key, m := range src {
		mirror[key] = menusService.MirrorEntry{
			DurationMinutes: m.DurationMinutes,
			DisplayName:     m.DisplayName,
		}
	}
	return mirror
}

// upstreamObserver возвращает наблюдателя метрик апстрима либо nil,
// чтобы не передавать typed-nil за интерфейсом
func upstreamObserver(collector *metrics.Metrics) calendarClient.MetricsObserver {
	if collector == nil {
		return nil
	}
	return collector
}
