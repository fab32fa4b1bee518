package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/splitter/internal/auth"
	"github.com/mmynk/splitter/internal/config"
	"github.com/mmynk/splitter/internal/metrics"
	"github.com/mmynk/splitter/internal/middleware"
	"github.com/mmynk/splitter/internal/realtime"
	"github.com/mmynk/splitter/internal/service"
	"github.com/mmynk/splitter/internal/storage/sqlite"
	"github.com/mmynk/splitter/pkg/proto/protoconnect"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Connect API server",
	Long: `Serve runs the AuthService and ReceiptService over Connect, gRPC and
gRPC-Web (binary protobuf or JSON), plus the public share view, /healthz and
/metrics. HTTP/2 is served in cleartext (h2c).

Settings come from flags, SPLITTER_* environment variables, the config file
and the env file, in that order.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.Int("port", 0, "listen port (default 8080)")
	f.String("db-path", "", "sqlite database path (default ./data/splitter.db)")
	f.String("public-base-url", "", "base URL used in share links")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.InsecureSecret() {
		slog.Warn("Using the development JWT secret; set SPLITTER_JWT_SECRET in production")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(cfg, store, reg),
		ReadHeaderTimeout: 10 * time.Second,
		// Watch streams end when the server shuts down.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "public_url", cfg.PublicBaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newHandler wires both services, the share view, /healthz and /metrics onto
// one chi router. It is served over h2c so gRPC clients can reach it without
// TLS.
func newHandler(cfg *config.Config, store *sqlite.SQLiteStore, reg *prometheus.Registry) http.Handler {
	m := metrics.New(reg)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)
	allocator := service.NewAllocator(store, cfg.CacheTTL, m)
	hub := realtime.NewHub(slog.Default())

	authSvc := service.NewAuthService(authenticator, jwtManager, store, slog.Default())
	receiptSvc := service.NewReceiptService(store, allocator, hub, cfg.PublicBaseURL)

	common := []connect.Interceptor{middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m)}
	authPath, authHandler := protoconnect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(append(common, middleware.OptionalAuth(jwtManager))...))
	receiptPath, receiptHandler := protoconnect.NewReceiptServiceHandler(receiptSvc,
		connect.WithInterceptors(append(common, middleware.RequireAuth(jwtManager))...))

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.Handle(authPath+"*", authHandler)
	r.Handle(receiptPath+"*", receiptHandler)
	r.Get("/share/{token}", receiptSvc.ServeShare)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return h2c.NewHandler(r, &http2.Server{})
}
