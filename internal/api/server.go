package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/stepcount/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx           *chi.Mux
	stepsService service.StepsServiceI
	userService  service.UserServiceI
	health       HealthChecker
	identity     *Identity
}

type ServicesList struct {
	StepsService service.StepsServiceI
	// Used by /healthz to check that the identity user still exists. Optional
	UserService service.UserServiceI
	Health      HealthChecker
	// Identity all requests act as. Requests to /steps fail with 500 when absent
	Identity *Identity
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		stepsService: servicesOptions.StepsService,
		userService:  servicesOptions.UserService,
		health:       servicesOptions.Health,
		identity:     servicesOptions.Identity,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Group(func(r chi.Router) {
		r.Use(s.IdentityMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/steps", s.ListSteps)
		r.Post("/steps", s.LogSteps)
		r.Delete("/steps/{date}", s.DeleteSteps)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("api shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	return nil
}
