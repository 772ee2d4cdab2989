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

	"github.com/cmlabs-hris/hris-dtr-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-dtr-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/generation"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dtr-go/internal/repository/postgresql"
	approvalService "github.com/cmlabs-hris/hris-dtr-go/internal/service/approval"
	dtrService "github.com/cmlabs-hris/hris-dtr-go/internal/service/dtr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	timeAdjustmentRepo := postgresql.NewTimeAdjustmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	scheduleAdjustmentRepo := postgresql.NewScheduleAdjustmentRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	assignmentRepo := postgresql.NewScheduleAssignmentRepository(db)
	cutoffRepo := postgresql.NewCutoffPeriodRepository(db)
	savedDTRRepo := postgresql.NewSavedDTRRepository(db)
	requestStatusRepos := postgresql.NewRequestStatusRepositories(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	dtrSvc := dtrService.NewDTRService(
		punchRepo,
		timeAdjustmentRepo,
		leaveRequestRepo,
		scheduleAdjustmentRepo,
		overtimeRequestRepo,
		assignmentRepo,
		cutoffRepo,
		savedDTRRepo,
		generation.NewTracker(),
	)
	approvalSvc := approvalService.NewApprovalService(requestStatusRepos)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		appHTTP.NewDTRHandler(dtrSvc),
		appHTTP.NewCutoffHandler(dtrSvc),
		appHTTP.NewApprovalHandler(approvalSvc),
		appHTTP.NewSessionHandler(JWTService),
	)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewDTRJobs(cutoffRepo, assignmentRepo, dtrSvc, cfg.Cron.SnapshotHour).
			RegisterJobs(scheduler, cfg.Cron.Interval)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
