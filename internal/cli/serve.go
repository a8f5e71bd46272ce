package cli

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"nifresolver/internal/config"
	"nifresolver/internal/handler"
	rhttp "nifresolver/internal/http"
	"nifresolver/internal/service"
	"nifresolver/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resolver HTTP service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides RESOLVER_ADDR)")
	serveCmd.Flags().String("log-level", "", "log level (overrides RESOLVER_LOG_LEVEL)")
	serveCmd.Flags().String("static-dir", "", "directory served ahead of the resolver page (overrides RESOLVER_STATIC_DIR)")
	serveCmd.Flags().Float64("rate-limit", 0, "requests per second per client, 0 disables (overrides RESOLVER_RATE_LIMIT)")
	rootCmd.AddCommand(serveCmd)
}

func loadServeConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("static-dir") {
		cfg.StaticDir, _ = flags.GetString("static-dir")
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit, _ = flags.GetFloat64("rate-limit")
	}
	return cfg
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadServeConfig(cmd)
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	resolveHandler := handler.NewResolveHandler(service.NewResolveService())
	e := rhttp.NewRouter(resolveHandler, rhttp.RouterOptions{
		StaticDir: cfg.StaticDir,
		RateLimit: cfg.RateLimit,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "module", "cli", "addr", cfg.Addr, "static_dir", cfg.StaticDir)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server stopping", "module", "cli")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
