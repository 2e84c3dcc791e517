package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const employeesRoot = "/api/employees"

// Server serves the employee REST API together with the health and metrics endpoints.
type Server struct {
	echo *echo.Echo
	log  *slog.Logger
	cfg  config.HTTPConfig
}

// New builds the HTTP server and registers every route on it.
func New(
	log *slog.Logger,
	cfg config.HTTPConfig,
	reg prometheus.Gatherer,
	appMetrics *metrics.Metrics,
	db DBPinger,
	svc EmployeeService,
) *Server {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}

	router.Use(middleware.Recover())
	router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	router.Use(requestLogger(log, appMetrics))

	router.GET("/healthz", echo.WrapHandler(NewHealthChecker(db, log)))
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	NewEmployeeHandler(log, svc).Register(router.Group(employeesRoot))

	return &Server{echo: router, log: log, cfg: cfg}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	s.echo.ServeHTTP(writer, req)
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		s.log.InfoContext(ctx, "Starting HTTP server", "address", s.cfg.Address)
		if err := s.echo.Start(s.cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.InfoContext(ctx, "Shutting down HTTP server", "timeout", s.cfg.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	return nil
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func requestLogger(log *slog.Logger, appMetrics *metrics.Metrics) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			appMetrics.HTTPRequests.WithLabelValues(v.Method, route, strconv.Itoa(v.Status)).Inc()
			appMetrics.HTTPRequestDuration.WithLabelValues(v.Method, route).Observe(v.Latency.Seconds())

			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			log.LogAttrs(c.Request().Context(), level, "request handled", attrs...)

			return nil
		},
	})
}
