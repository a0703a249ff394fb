// @title Steps-tracker API
// @description API for logging daily step counts
// @BasePath /
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/stepcount/internal/api"
	"github.com/limbo/stepcount/internal/repository"
	"github.com/limbo/stepcount/internal/service"
	"github.com/limbo/stepcount/pkg/cleanup"
	"github.com/limbo/stepcount/pkg/config"
	"github.com/limbo/stepcount/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	_, err := logging.Setup(logging.Options{
		Level:      cfg.GetString("LOG_LEVEL"),
		Path:       cfg.GetString("LOG_PATH"),
		MaxSizeMB:  cfg.GetIntOr("LOG_MAX_SIZE_MB", 100),
		MaxBackups: cfg.GetIntOr("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: cfg.GetIntOr("LOG_MAX_AGE_DAYS", 7),
	})
	if err != nil {
		log.Fatal("logging setup error: " + err.Error())
	}
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	connectCtx, cancel := context.WithTimeout(ctx, time.Second*15)
	pool, err := repository.NewPool(connectCtx, &dbCfg)
	cancel()
	if err != nil {
		exit("connecting to postgres error", err)
	}

	userService := service.NewUserService(repository.NewUsersRepoWithConn(pool))
	stepsService := service.NewStepsService(repository.NewStepsRepoWithConn(pool))

	identityCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	user, err := userService.ResolveIdentity(identityCtx, &service.IdentityRequest{
		Email: cfg.GetStringOr("STEPS_USER_EMAIL", "test@example.com"),
		Name:  cfg.GetStringOr("STEPS_USER_NAME", "Test User"),
	})
	cancel()
	if err != nil {
		exit("resolving identity error", err)
	}
	slog.Info("serving as user", slog.Int64("uid", user.ID), slog.String("email", user.Email))

	serv := api.New(&api.ServicesList{
		StepsService: stepsService,
		UserService:  userService,
		Health:       pool,
		Identity:     &api.Identity{UserID: user.ID, Email: user.Email},
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

var osExit = os.Exit

// exit runs registered cleanup jobs before terminating, which os.Exit and log.Fatal skip.
func exit(msg string, err error) {
	slog.Error(msg, slog.String("error", err.Error()))
	cleanup.CleanUp()
	osExit(1)
}
