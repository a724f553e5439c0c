package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tawdev/mahtaaj-sub005/internal/admin"
	"github.com/tawdev/mahtaaj-sub005/internal/auth"
	"github.com/tawdev/mahtaaj-sub005/internal/cache"
	"github.com/tawdev/mahtaaj-sub005/internal/catalog"
	"github.com/tawdev/mahtaaj-sub005/internal/config"
	"github.com/tawdev/mahtaaj-sub005/internal/db"
	"github.com/tawdev/mahtaaj-sub005/internal/middleware"
	"github.com/tawdev/mahtaaj-sub005/internal/notifications"
	"github.com/tawdev/mahtaaj-sub005/internal/prefill"
	"github.com/tawdev/mahtaaj-sub005/internal/reservation"
	"github.com/tawdev/mahtaaj-sub005/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Prefill tokens live in the cache too, so even without redis the process
	// keeps a working in-memory store.
	var cacheStore cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		cacheStore = redisCache
	} else {
		logger.Info("redis not configured, using in-memory cache")
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "mahtaaj-backend",
		}
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	catalogRepo := catalog.NewRepository(cols.CatalogItems)
	catalogService := catalog.NewService(catalogRepo, cfg.Timezone)
	catalogHandler := catalog.NewHandler(catalogService, val, logger, cacheStore, cacheTTL)

	reservationRepo := reservation.NewRepository(cols.Reservations)
	var notifier reservation.Notifier
	if mailer != nil {
		notifier = mailer
	}
	reservationService := reservation.NewService(reservationRepo, catalogService, cfg.Timezone, notifier)
	reservationHandler := reservation.NewHandler(reservationService, val, logger)

	prefillStore := prefill.NewStore(cacheStore, time.Duration(cfg.PrefillTTLMinutes)*time.Minute)
	prefillHandler := prefill.NewHandler(prefillStore, logger)

	adminRepo := admin.NewRepository(cols.Users)
	adminService := admin.NewService(adminRepo, cfg.Timezone)
	adminHandler := admin.NewHandler(adminService, val, logger, jwtManager, cfg.CookieSecure)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	reservationsLimiter := middleware.NewRateLimiter(cfg.RateLimitReservations, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	quotesLimiter := middleware.NewRateLimiter(cfg.RateLimitQuotes, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(middleware.OptionalSession(jwtManager))

			public.Get("/catalog/{family}", catalogHandler.ListFamily)
			public.Get("/catalog/{family}/{id}", catalogHandler.GetFamilyItem)

			public.With(quotesLimiter.Middleware).Post("/quotes", reservationHandler.Quote)
			public.With(reservationsLimiter.Middleware).Post("/reservations", reservationHandler.Create)
			public.Get("/reservations/{id}", reservationHandler.GetByID)

			public.With(quotesLimiter.Middleware).Post("/prefill", prefillHandler.Create)
			public.Get("/prefill/{token}", prefillHandler.Get)
			public.Delete("/prefill/{token}", prefillHandler.Delete)
		})

		api.Route("/admin", func(adminRouter chi.Router) {
			adminRouter.Post("/login", adminHandler.Login)
			adminRouter.Post("/refresh", adminHandler.Refresh)
			adminRouter.Post("/logout", adminHandler.Logout)

			// chi requires middlewares before routes, so the protected part
			// lives in its own sub-router.
			adminRouter.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager, admin.RoleAdmin, admin.RoleEmployee))

				protected.Post("/catalog", catalogHandler.AdminCreate)
				protected.Put("/catalog/{id}", catalogHandler.AdminUpdate)
				protected.Delete("/catalog/{id}", catalogHandler.AdminDelete)

				protected.Get("/reservations", reservationHandler.AdminList)
				protected.Patch("/reservations/{id}/status", reservationHandler.AdminUpdateStatus)
			})

			adminRouter.Group(func(restricted chi.Router) {
				restricted.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager, admin.RoleAdmin))

				restricted.Post("/users", adminHandler.CreateUser)
				restricted.Get("/users", adminHandler.ListUsers)
				restricted.Patch("/users/{id}/password", adminHandler.UpdateUserPassword)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
