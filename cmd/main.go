package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	bookingCheckoutHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/booking_checkout"
	bookingServicesHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/booking_services"
	bookingSuccessHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/booking_success"
	homeHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/home"
	quickBookHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/quick_book"
	roomDetailHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/room_detail"
	searchAvailabilityHandler "github.com/m04kA/villa-booking-front/internal/api/handlers/search_availability"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/config"
	"github.com/m04kA/villa-booking-front/internal/domain"
	sessionRepo "github.com/m04kA/villa-booking-front/internal/infra/storage/session"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
	bookingsService "github.com/m04kA/villa-booking-front/internal/service/bookings"
	catalogService "github.com/m04kA/villa-booking-front/internal/service/catalog"
	draftsService "github.com/m04kA/villa-booking-front/internal/service/drafts"
	flowService "github.com/m04kA/villa-booking-front/internal/service/flow"
	selectionService "github.com/m04kA/villa-booking-front/internal/service/selection"
	quickBookUC "github.com/m04kA/villa-booking-front/internal/usecase/quick_book"
	searchAvailabilityUC "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
	submitBookingUC "github.com/m04kA/villa-booking-front/internal/usecase/submit_booking"
	"github.com/m04kA/villa-booking-front/pkg/logger"
	"github.com/m04kA/villa-booking-front/pkg/metrics"
)

const janitorInterval = time.Minute

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

	log.Info("Starting villa-booking-front...")
	log.Info("Configuration loaded from config.toml")

	// W3C traceparent от фронта попадает в контекст запроса и в access-лог
	otel.SetTextMapPropagator(propagation.TraceContext{})

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Хранилище сессий
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	var sessions sessionRepo.Repository

	switch cfg.Sessions.Backend {
	case config.SessionBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(appCtx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}

		sessions = sessionRepo.NewRedisRepository(redisClient, sessionTTL, log)
		log.Info("Session storage: redis at %s", cfg.Redis.Addr)
	default:
		memory := sessionRepo.NewMemoryRepository(sessionTTL)
		go memory.RunJanitor(appCtx, janitorInterval, log)
		sessions = memory
		log.Info("Session storage: in-memory, ttl %s", sessionTTL)
	}

	// Клиент внешнего API виллы
	villaClient := villaapi.NewClient(
		cfg.VillaAPI.URL,
		villaapi.Options{
			Timeout:            time.Duration(cfg.VillaAPI.Timeout) * time.Second,
			BreakerMaxFailures: uint32(cfg.VillaAPI.BreakerMaxFailures),
			BreakerOpenTimeout: time.Duration(cfg.VillaAPI.BreakerOpenTimeout) * time.Second,
		},
		metricsCollector,
		log,
	)
	log.Info("Villa API client initialized: %s", cfg.VillaAPI.URL)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(villaClient, log)
	draftsSvc := draftsService.NewService(sessions, log)
	flowSvc := flowService.NewService(sessions, log)
	selectionSvc := selectionService.NewService(sessions, catalogSvc, log)
	bookingsSvc := bookingsService.NewService(villaClient, log)

	// Инициализируем use cases
	searchAvailabilityUseCase := searchAvailabilityUC.NewUseCase(villaClient, sessions, metricsCollector, log)
	quickBookUseCase := quickBookUC.NewUseCase(sessions, catalogSvc, draftsSvc, flowSvc, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(villaClient, draftsSvc, flowSvc, metricsCollector, log)

	// Инициализируем handlers
	home := homeHandler.NewHandler(catalogSvc, searchAvailabilityUseCase, log)
	roomDetail := roomDetailHandler.NewHandler(catalogSvc, searchAvailabilityUseCase, log)
	searchAvailability := searchAvailabilityHandler.NewHandler(searchAvailabilityUseCase, log)
	quickBook := quickBookHandler.NewHandler(quickBookUseCase, log)
	bookingServices := bookingServicesHandler.NewHandler(selectionSvc, flowSvc, log)
	bookingCheckout := bookingCheckoutHandler.NewHandler(draftsSvc, submitBookingUseCase, log)
	bookingSuccess := bookingSuccessHandler.NewHandler(bookingsSvc, log)

	guard := func(step domain.Step) mux.MiddlewareFunc {
		return middleware.StepGuard(step, flowSvc, metricsCollector, log)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// ============================================================
	// ROUTES С СЕССИЕЙ ПОСЕТИТЕЛЯ
	// ============================================================

	app := r.PathPrefix("").Subrouter()
	app.Use(middleware.Session(middleware.SessionOptions{
		CookieName: cfg.Sessions.CookieName,
		Secure:     cfg.Sessions.CookieSecure,
		TTL:        sessionTTL,
	}))

	// --- Выбор номера ---
	app.Handle("/", guard(domain.StepRoomSelection)(http.HandlerFunc(home.Handle))).Methods(http.MethodGet)
	app.HandleFunc("/search", searchAvailability.Handle).Methods(http.MethodPost)
	app.HandleFunc("/search", searchAvailability.HandleClear).Methods(http.MethodDelete)
	app.HandleFunc("/rooms/{roomId}", roomDetail.Handle).Methods(http.MethodGet)
	app.HandleFunc("/rooms/{roomId}/book", quickBook.Handle).Methods(http.MethodPost)

	// --- Выбор услуг ---
	services := app.PathPrefix(domain.StepServiceSelection.Path()).Subrouter()
	services.Use(guard(domain.StepServiceSelection))
	services.HandleFunc("", bookingServices.Handle).Methods(http.MethodGet)
	services.HandleFunc("/continue", bookingServices.HandleContinue).Methods(http.MethodPost)
	services.HandleFunc("/skip", bookingServices.HandleSkip).Methods(http.MethodPost)
	services.HandleFunc("/{serviceId}/toggle", bookingServices.HandleToggle).Methods(http.MethodPost)
	services.HandleFunc("/{serviceId}/increment", bookingServices.HandleIncrement).Methods(http.MethodPost)
	services.HandleFunc("/{serviceId}/decrement", bookingServices.HandleDecrement).Methods(http.MethodPost)

	// --- Оформление ---
	checkout := app.PathPrefix(domain.StepCheckout.Path()).Subrouter()
	checkout.Use(guard(domain.StepCheckout))
	checkout.HandleFunc("", bookingCheckout.Handle).Methods(http.MethodGet)
	checkout.HandleFunc("", bookingCheckout.HandleSubmit).Methods(http.MethodPost)

	// --- Подтверждение ---
	success := app.PathPrefix(domain.StepConfirmation.Path()).Subrouter()
	success.Use(guard(domain.StepConfirmation))
	success.HandleFunc("/{code}", bookingSuccess.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Metrics.ServiceName),
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

	// Останавливаем фоновые задачи (очистка сессий)
	stopApp()

	log.Info("Server stopped gracefully")
}
