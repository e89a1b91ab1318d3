package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/hris-attendance-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-attendance-go/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/hris-attendance-go/internal/service/department"
	leaveService "github.com/cmlabs-hris/hris-attendance-go/internal/service/leave"
	traceService "github.com/cmlabs-hris/hris-attendance-go/internal/service/trace"
	userService "github.com/cmlabs-hris/hris-attendance-go/internal/service/user"
	"github.com/cmlabs-hris/hris-attendance-go/migrations"
	"github.com/go-chi/httplog/v3"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-attendance"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, migrations.FS); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	jwtRepository := postgresql.NewJWTRepository(db)
	traceRepo := postgresql.NewTraceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	secureCookies := cfg.App.Env == "production"
	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, secureCookies)
	if err != nil {
		return err
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	} else {
		slog.Warn("Google login disabled, CLIENT_ID, CLIENT_SECRET or REDIRECT_URL not set")
	}

	traceSvc := traceService.NewTraceService(traceRepo, txManager, location)
	authSvc := serviceAuth.NewAuthService(userRepo, jwtRepository, JWTService, traceSvc, txManager)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo, location)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	userSvc := userService.NewUserService(userRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
			LogLevel:       level,
		},
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(JWTService, authSvc, googleService, cfg.App.FrontendURL, secureCookies),
			Trace:      appHTTP.NewTraceHandler(traceSvc, authSvc, JWTService),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc, location),
			Employee:   appHTTP.NewEmployeeHandler(userSvc),
			Department: appHTTP.NewDepartmentHandler(departmentSvc),
		},
	)

	scheduler := cron.NewScheduler()
	if cfg.JWT.CleanupInterval != "" {
		interval, _ := time.ParseDuration(cfg.JWT.CleanupInterval)
		cron.NewTokenJobs(jwtRepository, 24*time.Hour).RegisterJobs(scheduler, interval)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
