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

	calculatePriceHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/calculate_price"
	createBookingHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/create_review"
	deleteBookingHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/delete_booking"
	deleteReviewHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/delete_review"
	getBookingHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/get_booking"
	getCareersHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/get_careers"
	getPricingCatalogHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/get_pricing_catalog"
	getReviewHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/get_review"
	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/list_bookings"
	listReviewsHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/list_reviews"
	replyReviewHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/reply_review"
	submitApplicationHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/submit_application"
	submitContactHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/submit_contact"
	subscribeNewsletterHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/subscribe_newsletter"
	updateBookingStatusHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/update_booking_status"
	updateReviewStatusHandler "github.com/m04kA/LifeCare-BookingService/internal/api/handlers/update_review_status"
	"github.com/m04kA/LifeCare-BookingService/internal/api/middleware"
	"github.com/m04kA/LifeCare-BookingService/internal/config"
	reviewsCache "github.com/m04kA/LifeCare-BookingService/internal/infra/cache/reviews"
	applicationRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/application"
	bookingRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/booking"
	contactRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/contact"
	reviewRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/review"
	"github.com/m04kA/LifeCare-BookingService/internal/integrations/mailer"
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	bookingsService "github.com/m04kA/LifeCare-BookingService/internal/service/bookings"
	careersService "github.com/m04kA/LifeCare-BookingService/internal/service/careers"
	catalogService "github.com/m04kA/LifeCare-BookingService/internal/service/catalog"
	contactService "github.com/m04kA/LifeCare-BookingService/internal/service/contact"
	"github.com/m04kA/LifeCare-BookingService/internal/service/notifications"
	reviewsService "github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	calculatePriceUC "github.com/m04kA/LifeCare-BookingService/internal/usecase/calculate_price"
	createBookingUC "github.com/m04kA/LifeCare-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/LifeCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/metrics"
	"github.com/m04kA/LifeCare-BookingService/pkg/txmanager"
)

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

	log.Info("Starting LifeCare-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). Методы *metrics.Metrics безопасны для nil.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог цен
	engine, err := newPriceEngine(cfg.Pricing.CatalogFile)
	if err != nil {
		log.Fatal("Failed to load pricing catalog: %v", err)
	}
	log.Info("Pricing catalog loaded: version=%s, services=%d", engine.Version(), len(engine.Services()))

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

	// Обёртка пишет длительность запросов, если метрики включены
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	applicationRepository := applicationRepo.NewRepository(wrappedDB)

	// Кэш отзывов
	var listCache reviewsService.ListCache = reviewsCache.Nop{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Сервис работает и без кэша: ошибки Redis логируются на каждом запросе
			log.Warn("Redis ping failed (addr=%s): %v", cfg.Redis.Addr, err)
		}
		cancel()

		listCache = reviewsCache.New(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Reviews cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Отправка писем
	var sender notifications.Sender
	if cfg.SMTP.Enabled {
		sender = mailer.NewClient(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			FromName: cfg.SMTP.FromName,
			Timeout:  time.Duration(cfg.SMTP.Timeout) * time.Second,
		}, log)
		log.Info("SMTP enabled (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		sender = mailer.NewLogSender(log)
		log.Info("SMTP disabled, e-mails are only logged")
	}

	notifier, err := notifications.NewService(sender, cfg.SMTP.AdminEmail, notifications.DefaultSite, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to initialize notifications: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifier, log)
	catalogSvc := catalogService.NewService(engine)
	contactSvc := contactService.NewService(contactRepository, notifier, log)
	reviewSvc := reviewsService.NewService(reviewRepository, listCache, engine, log)
	careersSvc := careersService.NewService(applicationRepository, notifier, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		engine,
		notifier,
		metricsCollector,
		log,
	)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(engine, metricsCollector, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getPricingCatalog := getPricingCatalogHandler.NewHandler(catalogSvc, log)
	submitContact := submitContactHandler.NewHandler(contactSvc, log)
	subscribeNewsletter := subscribeNewsletterHandler.NewHandler(contactSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	getReview := getReviewHandler.NewHandler(reviewSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	updateReviewStatus := updateReviewStatusHandler.NewHandler(reviewSvc, log)
	replyReview := replyReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)
	getCareers := getCareersHandler.NewHandler(careersSvc)
	submitApplication := submitApplicationHandler.NewHandler(careersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/api/health", health.Handle).Methods(http.MethodGet)

	// API prefix. Preflight OPTIONS обрабатывает CORS middleware.
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог цен ---
	api.HandleFunc("/pricing/catalog", getPricingCatalog.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/pricing/services", getPricingCatalog.HandleServices).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/pricing/durations", getPricingCatalog.HandleDurations).Methods(http.MethodGet, http.MethodOptions)

	// --- Бронирования ---
	// calculate-price регистрируется раньше /bookings/{id}
	api.HandleFunc("/bookings/calculate-price", calculatePrice.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{id:[0-9]+}", updateBookingStatus.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Обратная связь ---
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/contact/newsletter", subscribeNewsletter.Handle).Methods(http.MethodPost, http.MethodOptions)

	// --- Отзывы ---
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{id:[0-9]+}", getReview.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/reviews/{id:[0-9]+}", deleteReview.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/reviews/{id:[0-9]+}/status", updateReviewStatus.Handle).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/reviews/{id:[0-9]+}/reply", replyReview.Handle).Methods(http.MethodPost, http.MethodOptions)

	// --- Модерация (без аутентификации) ---
	api.HandleFunc("/admin/reviews", listReviews.HandleAdmin).Methods(http.MethodGet, http.MethodOptions)

	// --- Карьера ---
	api.HandleFunc("/careers/positions", getCareers.HandlePositions).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/careers/openings", getCareers.HandleOpenings).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/careers/applications", submitApplication.Handle).Methods(http.MethodPost, http.MethodOptions)

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

// newPriceEngine строит движок по файлу каталога или по встроенному каталогу
func newPriceEngine(catalogFile string) (*pricing.Engine, error) {
	if catalogFile == "" {
		return pricing.NewDefaultEngine()
	}
	c, err := pricing.LoadFile(catalogFile)
	if err != nil {
		return nil, err
	}
	return pricing.NewEngine(c)
}
