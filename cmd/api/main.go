package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"content-hub/internal/common/pagination"
	pgRepo "content-hub/internal/infra/adapter/persistence/postgres"
	"content-hub/internal/infra/db"
	"content-hub/internal/infra/summarizer"
	"content-hub/internal/observability/logging"
	"content-hub/internal/observability/tracing"

	artUC "content-hub/internal/usecase/article"
	intUC "content-hub/internal/usecase/interaction"
	"content-hub/internal/usecase/summary"
	userUC "content-hub/internal/usecase/user"

	hhttp "content-hub/internal/handler/http"
	harticle "content-hub/internal/handler/http/article"
	hauth "content-hub/internal/handler/http/auth"
	hinteraction "content-hub/internal/handler/http/interaction"
	"content-hub/internal/handler/http/requestid"
)

func main() {
	logger := initLogger()
	secret := validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	summaries := initSummaryProvider(logger)

	version := getVersion()
	handler := setupServer(logger, database, version, secret, summaries)

	runServer(logger, handler, version)
}

// initLogger initializes the structured logger and installs it as the
// process-wide default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// Enforce a 256-bit minimum so HS256 tokens cannot be brute-forced.
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initSummaryProvider builds the summarization provider from environment
// configuration. With no API key configured the provider degrades to
// extractive-only summaries; the application still starts.
func initSummaryProvider(logger *slog.Logger) *summary.Provider {
	var ai summary.Summarizer

	backend := os.Getenv("SUMMARIZER_BACKEND")
	switch backend {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			logger.Warn("OPENAI_API_KEY not set, using extractive summaries only")
			break
		}
		cfg, err := summarizer.LoadOpenAIConfig()
		if err != nil {
			logger.Error("invalid summarizer configuration", slog.Any("error", err))
			os.Exit(1)
		}
		ai = summarizer.NewOpenAI(apiKey, cfg)
		logger.Info("summarizer backend configured", slog.String("backend", "openai"))
	case "", "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			logger.Warn("ANTHROPIC_API_KEY not set, using extractive summaries only")
			break
		}
		ai = summarizer.NewClaude(apiKey)
		logger.Info("summarizer backend configured", slog.String("backend", "anthropic"))
	case "none":
		logger.Info("summarizer backend disabled, using extractive summaries only")
	default:
		logger.Error("unknown SUMMARIZER_BACKEND", slog.String("backend", backend))
		os.Exit(1)
	}

	return summary.NewProvider(ai, summarizer.Extract)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services and routes into the root handler.
func setupServer(logger *slog.Logger, database *sql.DB, version string, secret []byte, summaries *summary.Provider) http.Handler {
	userSvc := &userUC.Service{Repo: pgRepo.NewUserRepo(database)}

	articleRepo := pgRepo.NewArticleRepo(database)
	artSvc := &artUC.Service{Repo: articleRepo, Summaries: summaries}
	intSvc := &intUC.Service{Repo: pgRepo.NewInteractionRepo(database), Articles: articleRepo}

	paginationCfg := pagination.LoadFromEnv()

	// 認証エンドポイントは1分間に5リクエストまで
	authRateLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	publicMux := http.NewServeMux()
	publicMux.Handle("POST /auth/register", authRateLimiter.Limit(hauth.RegisterHandler(userSvc)))
	publicMux.Handle("POST /auth/token", authRateLimiter.Limit(hauth.TokenHandler(userSvc, secret)))

	publicMux.Handle("/health", &hhttp.HealthHandler{
		DB:                  database,
		Version:             version,
		SummarizerAvailable: summaries.Available(),
	})
	publicMux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	publicMux.Handle("/live", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", hhttp.MetricsHandler())

	authz := hauth.Middleware(secret)

	privateMux := http.NewServeMux()
	harticle.Register(privateMux, artSvc, paginationCfg, logger, authz)
	hinteraction.Register(privateMux, intSvc, paginationCfg, logger, authz)

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/", publicMux)
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/", privateMux)

	return applyMiddleware(logger, rootMux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
