package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	_ "artwalls/docs"

	"artwalls/config"
	"artwalls/internal/adapters/analytics"
	authadapter "artwalls/internal/adapters/auth"
	emailadapter "artwalls/internal/adapters/email"
	httpdelivery "artwalls/internal/delivery/http"
	"artwalls/internal/delivery/http/controllers"
	"artwalls/internal/delivery/http/middleware"
	"artwalls/internal/ratelimit"
	"artwalls/internal/repository/postgres"
	"artwalls/internal/services"
)

// @title Artwalls API
// @version 1.0
// @description Wall-space request lifecycle: artist applications and waitlist
// @description entries to hosts, monthly quotas, and invite links.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}
	logger.Info("database connected")

	if err := config.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	inviteRepo := postgres.NewInviteRepository(db)
	hostSettingsRepo := postgres.NewHostSettingsRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(0) // 0 selects the bcrypt default cost
	tokenIssuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	emitter := analytics.NewLogEmitter(logger)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, roleRepo, hasher, tokenIssuer, cfg.TokenExpiry)
	billingService := services.NewBillingService(userRepo)
	quotaCalc := services.NewQuotaCalculator(requestRepo, billingService)
	requestService := services.NewRequestService(requestRepo, hostSettingsRepo, userRepo, roleRepo, quotaCalc, emitter, emailService)
	inviteService := services.NewInviteService(inviteRepo, userRepo, emitter, emailService)
	hostService := services.NewHostService(hostSettingsRepo)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	requestController := controllers.NewRequestController(logger, requestService)
	hostController := controllers.NewHostController(logger, hostService)
	inviteController := controllers.NewInviteController(logger, inviteService)

	limiter := ratelimit.New()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			limiter.Cleanup()
		}
	}()

	mux := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Verifier:        tokenVerifier,
		Limiter:         limiter,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
	}, authController, requestController, hostController, inviteController)

	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
