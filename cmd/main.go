package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	addToCartHandler "github.com/m04kA/container-storefront/internal/api/handlers/add_to_cart"
	checkDeliveryDateHandler "github.com/m04kA/container-storefront/internal/api/handlers/check_delivery_date"
	getBookedDatesHandler "github.com/m04kA/container-storefront/internal/api/handlers/get_booked_dates"
	getZoneProductsHandler "github.com/m04kA/container-storefront/internal/api/handlers/get_zone_products"
	"github.com/m04kA/container-storefront/internal/api/handlers/health"
	listZonesHandler "github.com/m04kA/container-storefront/internal/api/handlers/list_zones"
	resolveZoneHandler "github.com/m04kA/container-storefront/internal/api/handlers/resolve_zone"
	"github.com/m04kA/container-storefront/internal/api/middleware"
	"github.com/m04kA/container-storefront/internal/config"
	commerceClient "github.com/m04kA/container-storefront/internal/integrations/commerce"
	availabilityService "github.com/m04kA/container-storefront/internal/service/availability"
	zonesService "github.com/m04kA/container-storefront/internal/service/zones"
	addToCartUC "github.com/m04kA/container-storefront/internal/usecase/add_to_cart"
	getZoneProductsUC "github.com/m04kA/container-storefront/internal/usecase/get_zone_products"
	resolveZoneUC "github.com/m04kA/container-storefront/internal/usecase/resolve_zone"
	"github.com/m04kA/container-storefront/pkg/logger"
	"github.com/m04kA/container-storefront/pkg/metrics"
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

	log.Info("Starting container-storefront...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// Выключенные метрики - nil, методы Metrics это допускают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент commerce-бэкенда
	commerce := commerceClient.NewClient(
		cfg.Commerce.URL,
		cfg.Commerce.PublishableKey,
		cfg.Commerce.RegionID,
		time.Duration(cfg.Commerce.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	if cfg.Commerce.PublishableKey == "" {
		log.Warn("Commerce publishable key is empty, store API requests will be rejected")
	}
	log.Info("Commerce client initialized (url=%s, timeout=%ds)", cfg.Commerce.URL, cfg.Commerce.Timeout)

	// Инициализируем сервисы
	zoneSvc := zonesService.NewService(commerce, metricsCollector, log)
	availabilityChecker := availabilityService.NewChecker(commerce, metricsCollector, log)

	// Инициализируем use cases
	resolveZoneUseCase := resolveZoneUC.NewUseCase(zoneSvc, metricsCollector, log)
	getZoneProductsUseCase := getZoneProductsUC.NewUseCase(zoneSvc, commerce, log)
	addToCartUseCase := addToCartUC.NewUseCase(commerce, availabilityChecker, metricsCollector, log)

	// Инициализируем handlers
	listZones := listZonesHandler.NewHandler(zoneSvc, log)
	resolveZone := resolveZoneHandler.NewHandler(resolveZoneUseCase, log)
	getZoneProducts := getZoneProductsHandler.NewHandler(getZoneProductsUseCase, log)
	getBookedDates := getBookedDatesHandler.NewHandler(availabilityChecker, log)
	checkDeliveryDate := checkDeliveryDateHandler.NewHandler(availabilityChecker, log)
	addToCart := addToCartHandler.NewHandler(addToCartUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Зоны доставки ---
	// Таблица зон
	api.HandleFunc("/zones", listZones.Handle).Methods(http.MethodGet)

	// Определение зоны по почтовому индексу
	api.HandleFunc("/zones/resolve", resolveZone.Handle).Methods(http.MethodGet)

	// Контейнеры зоны (zoneId - имя тега зоны, например zone1)
	api.HandleFunc("/zones/{zoneId}/products", getZoneProducts.Handle).Methods(http.MethodGet)

	// --- Даты доставки ---
	// Занятые даты товара
	api.HandleFunc("/products/{productId}/booked-dates", getBookedDates.Handle).Methods(http.MethodGet)

	// Проверка конкретной даты
	api.HandleFunc("/products/{productId}/booked-dates/{date}", checkDeliveryDate.Handle).Methods(http.MethodGet)

	// --- Корзина ---
	// Добавление контейнера с датой доставки
	api.HandleFunc("/carts/{cartId}/line-items", addToCart.Handle).Methods(http.MethodPost)

	// Внешние middleware: CORS, логирование запросов, rate limit, gzip
	var handler http.Handler = r
	handler = middleware.NewCORS(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.RequestLogger(log)(handler)
	handler = middleware.RequestID(handler)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(
			context.Background(),
			rate.Limit(cfg.RateLimit.RequestsPerSecond),
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.CleanupPeriod)*time.Second,
			time.Duration(cfg.RateLimit.ClientTTL)*time.Second,
			cfg.RateLimit.TrustProxyHeaders,
		)
		handler = rateLimiter.Middleware(handler)
		log.Info("Rate limiting enabled (%.1f req/s, burst %d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	handler = gziphandler.GzipHandler(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	if rateLimiter != nil {
		rateLimiter.Shutdown()
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
