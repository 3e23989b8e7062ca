package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"teller-desk/internal/config"
	"teller-desk/internal/currency"
	"teller-desk/internal/handlers"
	"teller-desk/internal/middleware"
	"teller-desk/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds request bodies; every payload is a name or an amount
const maxBodySize = "64K"

// Dependencies are the collaborators the HTTP server is built from
type Dependencies struct {
	Config        *config.Config
	DB            handlers.HealthChecker
	LedgerService services.LedgerServiceInterface
	Registry      *prometheus.Registry
	Logger        *slog.Logger
}

// Server is the HTTP front of the ledger: JSON API, dashboard and
// operational endpoints
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New builds the echo instance and registers every route
func New(deps Dependencies) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	renderer, err := handlers.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	docsHandler, err := handlers.NewDocsHandler()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Logger, deps.Registry).Handle

	s := &Server{
		echo:    e,
		config:  deps.Config,
		limiter: middleware.NewRateLimiter(deps.Config.Security.RateLimitPerSecond, deps.Config.Security.RateLimitBurst),
		logger:  deps.Logger,
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  deps.Config.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))

	formatter := currency.NewFormatter(deps.Config.Ledger.CurrencySymbol)
	ledgerHandler := handlers.NewLedgerHandler(deps.LedgerService, formatter, deps.Logger)
	dashboardHandler := handlers.NewDashboardHandler(deps.LedgerService, formatter, deps.Logger)
	healthHandler := handlers.NewHealthCheckHandler(deps.DB)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	e.GET("/docs/openapi.json", docsHandler.ServeOAS3JSON)

	e.GET(middleware.DashboardPath, dashboardHandler.Show)
	dashboard := e.Group("/dashboard", s.limiter.Middleware())
	dashboard.POST("/customers", dashboardHandler.OpenAccount)
	dashboard.POST("/customers/:id/deposit", dashboardHandler.Deposit)
	dashboard.POST("/customers/:id/withdraw", dashboardHandler.Withdraw)
	dashboard.POST("/customers/:id/loan", dashboardHandler.DisburseLoan)

	api := e.Group("/api/v1", s.limiter.Middleware())
	api.GET("/bank", ledgerHandler.GetBank)
	api.GET("/bank/reconciliation", ledgerHandler.GetReconciliation)
	api.GET("/customers", ledgerHandler.ListCustomers)
	api.POST("/customers", ledgerHandler.OpenAccount)
	api.GET("/customers/:id", ledgerHandler.GetCustomer)
	api.GET("/customers/:id/passbook", ledgerHandler.GetPassbook)
	api.GET("/customers/:id/balance-history", ledgerHandler.GetBalanceHistory)
	api.POST("/customers/:id/deposits", ledgerHandler.Deposit)
	api.POST("/customers/:id/withdrawals", ledgerHandler.Withdraw)
	api.POST("/customers/:id/loans", ledgerHandler.DisburseLoan)

	if deps.Config.IsDevelopment() {
		devHandler := handlers.NewDevHandler(deps.LedgerService, formatter, deps.Logger)
		api.POST("/dev/customers/generate", devHandler.GenerateDemoCustomers)
	}

	return s, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	limiterCtx, stopLimiter := context.WithCancel(ctx)
	defer stopLimiter()
	go s.limiter.Run(limiterCtx)

	httpServer := &http.Server{
		Addr:         s.config.Server.Address(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("teller desk listening", slog.String("addr", httpServer.Addr))
		errCh <- s.echo.StartServer(httpServer)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down http server")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

// requestLogger logs one line per request with the trace id
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}
