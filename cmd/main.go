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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adjustGuestsHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/adjust_guests"
	checkWizardAvailabilityHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/check_wizard_availability"
	confirmWizardHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/confirm_wizard"
	createHoldHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/create_hold"
	getAvailabilityHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/get_availability"
	getExperiencesHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/get_experiences"
	getOffersHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/get_offers"
	getWizardHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/get_wizard"
	selectExperienceHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/select_experience"
	selectSlotHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/select_slot"
	startWizardHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/start_wizard"
	submitContactHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/submit_contact"
	wizardBackHandler "github.com/sulfurea/SPA-BookingService/internal/api/handlers/wizard_back"
	"github.com/sulfurea/SPA-BookingService/internal/api/middleware"
	"github.com/sulfurea/SPA-BookingService/internal/catalog"
	"github.com/sulfurea/SPA-BookingService/internal/config"
	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/internal/infra/contactsender"
	"github.com/sulfurea/SPA-BookingService/internal/infra/mockgestionale"
	gestionaleClient "github.com/sulfurea/SPA-BookingService/internal/integrations/gestionale"
	handoffService "github.com/sulfurea/SPA-BookingService/internal/service/handoff"
	trackingService "github.com/sulfurea/SPA-BookingService/internal/service/tracking"
	wizardService "github.com/sulfurea/SPA-BookingService/internal/service/wizard"
	checkAvailabilityUC "github.com/sulfurea/SPA-BookingService/internal/usecase/check_availability"
	createHoldUC "github.com/sulfurea/SPA-BookingService/internal/usecase/create_hold"
	getOffersUC "github.com/sulfurea/SPA-BookingService/internal/usecase/get_offers"
	submitContactUC "github.com/sulfurea/SPA-BookingService/internal/usecase/submit_contact"
	"github.com/sulfurea/SPA-BookingService/pkg/logger"
	"github.com/sulfurea/SPA-BookingService/pkg/metrics"
)

// availabilityProvider общий контракт gestionale: доступность, offerte, hold
type availabilityProvider interface {
	GetAvailability(ctx context.Context, query *domain.BookingQuery) (*domain.AvailabilityResult, error)
	GetOffers(ctx context.Context, start, end string) ([]domain.Offer, error)
	CreateHold(ctx context.Context, req *domain.HoldRequest) (*domain.Hold, error)
}

// meteredProvider оборачивает провайдер счётчиком операций
type meteredProvider struct {
	next availabilityProvider
	m    *metrics.Metrics
}

func (p *meteredProvider) observe(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	p.m.ProviderRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

func (p *meteredProvider) GetAvailability(ctx context.Context, query *domain.BookingQuery) (*domain.AvailabilityResult, error) {
	result, err := p.next.GetAvailability(ctx, query)
	p.observe("availability", err)
	return result, err
}

func (p *meteredProvider) GetOffers(ctx context.Context, start, end string) ([]domain.Offer, error) {
	offers, err := p.next.GetOffers(ctx, start, end)
	p.observe("offers", err)
	return offers, err
}

func (p *meteredProvider) CreateHold(ctx context.Context, req *domain.HoldRequest) (*domain.Hold, error) {
	hold, err := p.next.CreateHold(ctx, req)
	p.observe("hold", err)
	return hold, err
}

func main() {
	// .env опционален, секреты могут прийти из окружения
	_ = godotenv.Load()

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

	log.Info("Starting SPA-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог esperienze/offerte/FAQ
	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded from %s: %d experiences, %d offers",
		cfg.Catalog.File, len(cat.Experiences()), len(cat.Offers()))

	// Выбираем backend gestionale: реальный HTTP клиент или mock
	// Переключение делается один раз при старте, не на каждый запрос
	var provider availabilityProvider
	if cfg.Gestionale.UseMock() {
		provider = mockgestionale.NewProvider(log)
		log.Info("Gestionale backend: mock (no base URL configured)")
	} else {
		provider = gestionaleClient.NewClient(cfg.Gestionale.BaseURL, cfg.Gestionale.APIKey, log)
		log.Info("Gestionale backend: %s", cfg.Gestionale.BaseURL)
	}
	if cfg.Metrics.Enabled {
		provider = &meteredProvider{next: provider, m: metricsCollector}
	}

	// Аналитика: сбои внутри трекера никогда не ломают основной сценарий
	tracker := trackingService.New(cfg.Tracking.Endpoint, log)
	if cfg.Tracking.Endpoint == "" {
		log.Info("Tracking endpoint not configured, events are logged only")
	}

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		provider,
		cat,
		checkAvailabilityUC.Limits{
			MinGuests:      cfg.Booking.MinGuests,
			MaxGuests:      cfg.Booking.MaxGuests,
			MaxAdvanceDays: cfg.Booking.MaxAdvanceDays,
		},
		log,
	)
	getOffersUseCase := getOffersUC.NewUseCase(provider, log)
	createHoldUseCase := createHoldUC.NewUseCase(
		provider,
		cat,
		createHoldUC.Limits{
			MinGuests: cfg.Booking.MinGuests,
			MaxGuests: cfg.Booking.MaxGuests,
		},
		log,
	)
	submitContactUseCase := submitContactUC.NewUseCase(
		contactsender.New(log),
		cfg.Contact.Email,
		log,
	)

	// Инициализируем сервисы
	handoffSvc := handoffService.NewService(cfg.Contact.Phone, cfg.Contact.WhatsApp, cfg.Contact.Email, log)

	var sessionsGauge wizardService.SessionsGauge
	if cfg.Metrics.Enabled {
		sessionsGauge = metricsCollector.WizardSessionsActive
	}
	wizardSvc := wizardService.NewService(
		checkAvailabilityUseCase,
		cat,
		handoffSvc,
		tracker,
		wizardService.Limits{
			MinGuests:      cfg.Booking.MinGuests,
			MaxGuests:      cfg.Booking.MaxGuests,
			MaxAdvanceDays: cfg.Booking.MaxAdvanceDays,
		},
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		sessionsGauge,
		&checkAvailabilityUC.RealTimeProvider{},
		log,
	)
	defer wizardSvc.Close()

	// Инициализируем handlers
	getExperiences := getExperiencesHandler.NewHandler(cat, log)
	getOffers := getOffersHandler.NewHandler(getOffersUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, tracker, log)
	startWizard := startWizardHandler.NewHandler(wizardSvc, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	selectExperience := selectExperienceHandler.NewHandler(wizardSvc, log)
	adjustGuests := adjustGuestsHandler.NewHandler(wizardSvc, log)
	checkWizardAvailability := checkWizardAvailabilityHandler.NewHandler(wizardSvc, log)
	selectSlot := selectSlotHandler.NewHandler(wizardSvc, log)
	wizardBack := wizardBackHandler.NewHandler(wizardSvc, log)
	confirmWizard := confirmWizardHandler.NewHandler(wizardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все маршруты публичные
	api := r.PathPrefix("/api/v1").Subrouter()

	// Витрина и доступность
	api.HandleFunc("/experiences", getExperiences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offers", getOffers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hold", createHold.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)

	// Визард бронирования
	api.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{sessionId}/experience", selectExperience.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/guests", adjustGuests.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/availability", checkWizardAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/back", wizardBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/confirm", confirmWizard.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped")
}
