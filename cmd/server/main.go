package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	cartapp "github.com/happydigitalmarketings/priyam/internal/application/cart"
	catalogapp "github.com/happydigitalmarketings/priyam/internal/application/catalog"
	checkoutapp "github.com/happydigitalmarketings/priyam/internal/application/checkout"
	contentapp "github.com/happydigitalmarketings/priyam/internal/application/content"
	identityapp "github.com/happydigitalmarketings/priyam/internal/application/identity"
	orderapp "github.com/happydigitalmarketings/priyam/internal/application/order"
	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/order"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/auth"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/cartstore"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/config"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/event"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/logger"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/notification"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/payment"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/persistence"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/scheduler"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/telemetry"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/handler"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/middleware"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing (no-op provider when disabled)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.EnableGormTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Warn("Failed to instrument database tracing", zap.Error(err))
	}
	log.Info("Database connected")

	// Redis backs the cart store and the cross-instance event bridge.
	// Without it the server still runs, single-instance, carts in memory.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unreachable, falling back to in-memory cart store", zap.Error(err))
			redisClient = nil
		}
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	postRepo := persistence.NewGormBlogPostRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Cart store
	var cartStore cart.Store
	if redisClient != nil {
		cartStore = cartstore.NewRedisStore(redisClient, cfg.Cart.SessionTTL, log)
	} else {
		cartStore = cartstore.NewMemoryStore()
	}

	// Event bus and cart event fan-out
	eventBus := event.NewInMemoryEventBus(log)

	cartEventsHandler := handler.NewCartEventsHandler(log)
	eventBus.Subscribe(cartEventsHandler)
	defer cartEventsHandler.Stop()

	if redisClient != nil {
		bridge := event.NewRedisCartBridge(redisClient, eventBus, log)
		eventBus.Subscribe(bridge)
		if err := bridge.Start(context.Background()); err != nil {
			log.Fatal("Failed to start cart event bridge", zap.Error(err))
		}
		defer func() {
			if err := bridge.Stop(context.Background()); err != nil {
				log.Error("Error stopping cart event bridge", zap.Error(err))
			}
		}()
	}

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Payment gateway, nil when online payment is disabled
	var gateway order.PaymentGateway
	if cfg.Payment.Enabled {
		adapter, err := payment.NewRazorpayAdapter(&payment.RazorpayConfig{
			KeyID:     cfg.Payment.KeyID,
			KeySecret: cfg.Payment.KeySecret,
			BaseURL:   cfg.Payment.BaseURL,
			Currency:  cfg.Payment.Currency,
			Timeout:   cfg.Payment.Timeout,
		})
		if err != nil {
			log.Fatal("Failed to configure payment gateway", zap.Error(err))
		}
		gateway = adapter
		log.Info("Payment gateway enabled")
	}

	// Confirmation mailer
	var mailer checkoutapp.ConfirmationMailer
	if cfg.SMTP.Enabled {
		smtpMailer, err := notification.NewSMTPMailer(cfg.SMTP, cfg.App.Name, log)
		if err != nil {
			log.Fatal("Failed to configure mailer", zap.Error(err))
		}
		mailer = smtpMailer
	} else {
		mailer = notification.NewNoopMailer(log)
	}

	// Application services
	deliveryFee := valueobject.NewMoneyINR(decimal.NewFromFloat(cfg.Cart.DeliveryFee))
	cartService := cartapp.NewService(cartStore, productRepo, eventBus, deliveryFee, log)
	checkoutService := checkoutapp.NewService(orderRepo, cartStore, gateway, mailer, eventBus, log)
	orderService := orderapp.NewService(orderRepo, eventBus, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	bannerService := contentapp.NewBannerService(bannerRepo)
	postService := contentapp.NewPostService(postRepo)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	// First admin account on a fresh database; without it the back
	// office has no way to log in.
	if err := authService.EnsureBootstrapAdmin(context.Background(),
		cfg.App.BootstrapAdminUsername, cfg.App.BootstrapAdminPassword); err != nil {
		log.Fatal("Failed to create bootstrap admin", zap.Error(err))
	}

	// Stale gateway-order sweeper
	if cfg.Reconciler.Enabled {
		reconciler := scheduler.NewPendingOrderReconciler(cfg.Reconciler, orderRepo, eventBus, log)
		if err := reconciler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start order reconciler", zap.Error(err))
		}
		defer func() {
			if err := reconciler.Stop(context.Background()); err != nil {
				log.Error("Error stopping order reconciler", zap.Error(err))
			}
		}()
		log.Info("Order reconciler started",
			zap.Duration("check_interval", cfg.Reconciler.CheckInterval),
			zap.Duration("pending_ttl", cfg.Reconciler.PendingTTL),
		)
	}

	// HTTP handlers
	systemHandler := handler.NewSystemHandler(db)
	cartHandler := handler.NewCartHandler(cartService, cartEventsHandler)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderAdminHandler := handler.NewOrderAdminHandler(orderService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	bannerHandler := handler.NewBannerHandler(bannerService)
	postHandler := handler.NewPostHandler(postService)
	authHandler := handler.NewAuthHandler(authService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName))
	}
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", middleware.CartSessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	systemHandler.RegisterRoutes(&engine.RouterGroup)

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAdminMiddleware(middleware.JWTAuth(jwtService)),
	)
	r.Register(cartHandler)
	r.Register(checkoutHandler)
	r.Register(productHandler)
	r.Register(categoryHandler)
	r.Register(bannerHandler)
	r.Register(postHandler)
	r.Register(authHandler)
	r.RegisterAdmin(orderAdminHandler)
	r.RegisterAdmin(productHandler)
	r.RegisterAdmin(categoryHandler)
	r.RegisterAdmin(bannerHandler)
	r.RegisterAdmin(postHandler)
	r.RegisterAdmin(authHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}
	log.Info("Server stopped")
}
