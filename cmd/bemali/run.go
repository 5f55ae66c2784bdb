package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bemali/internal/config"
	"bemali/internal/content"
	"bemali/internal/logging"
	"bemali/internal/metrics"
	"bemali/internal/modeswitch"
	"bemali/internal/tagline"
	"bemali/internal/telemetry"
	"bemali/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// runtime is everything the page and the subcommands share.
type runtime struct {
	cfg     config.Config
	logger  *zap.Logger
	site    *content.Site
	metrics *metrics.Metrics
	server  *metrics.Server
	tracing *telemetry.Provider
	fetcher *tagline.Fetcher
}

// setup resolves the configuration and builds the runtime. On error,
// whatever was started is released.
func setup(ctx context.Context) (rt *runtime, err error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	rt = &runtime{cfg: cfg}
	defer func() {
		if err != nil {
			rt.Close()
		}
	}()

	rt.logger = logging.NewOrNop(cfg.LogFile, cfg.LogLevel).With(zap.String("session", uuid.NewString()))

	rt.site, err = content.Load(cfg.ContentPath)
	if err != nil {
		return rt, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rt.metrics, err = metrics.New(reg)
	if err != nil {
		return rt, fmt.Errorf("register metrics: %w", err)
	}
	if cfg.MetricsAddr != "" {
		rt.server = metrics.NewServer(cfg.MetricsAddr, reg, rt.logger)
		if err := rt.server.Start(); err != nil {
			return rt, fmt.Errorf("metrics server: %w", err)
		}
	}

	rt.tracing, err = telemetry.New(ctx, cfg.OTLPEndpoint, telemetry.DefaultServiceName)
	if err != nil {
		return rt, fmt.Errorf("tracing: %w", err)
	}

	var gen tagline.Generator
	g, genErr := tagline.NewGenAIGenerator(ctx, cfg.APIKey, cfg.Model)
	switch {
	case errors.Is(genErr, tagline.ErrNoAPIKey):
		rt.logger.Info("no API key configured, taglines use the fallback")
	case genErr != nil:
		rt.logger.Warn("tagline generator unavailable", zap.Error(genErr))
	default:
		gen = g
	}

	rt.fetcher = tagline.NewFetcher(gen, tagline.Options{
		Temperature: cfg.Temperature,
		Timeout:     cfg.TaglineTimeout,
		Tracer:      rt.tracing.Tracer(),
		Metrics:     rt.metrics,
		Logger:      rt.logger.Named("tagline"),
	})

	rt.logger.Info("started",
		zap.Stringer("mode", cfg.Mode),
		zap.String("model", cfg.Model),
		zap.Bool("generator", gen != nil),
		zap.Bool("tracing", rt.tracing.Enabled()),
		zap.String("metrics_addr", cfg.MetricsAddr),
	)
	return rt, nil
}

// Close stops the metrics server and flushes traces and logs.
func (rt *runtime) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if rt.server != nil {
		if err := rt.server.Stop(ctx); err != nil {
			rt.logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}
	if err := rt.tracing.Shutdown(ctx); err != nil && rt.logger != nil {
		rt.logger.Warn("tracing shutdown", zap.Error(err))
	}
	if rt.logger != nil {
		_ = rt.logger.Sync()
	}
}

func runPage(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	model := ui.NewAppModel(ui.Options{
		Site:        rt.site,
		Mode:        rt.cfg.Mode,
		Fetcher:     rt.fetcher,
		AutoAdvance: rt.cfg.AutoAdvance,
		Logger:      rt.logger.Named("ui"),
		Metrics:     rt.metrics,
	})
	defer model.Teardown()

	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}

func runTagline(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	mode := rt.cfg.Mode
	p := rt.site.ProfileFor(mode == modeswitch.Personal)
	res := rt.fetcher.Once(ctx, mode.String(), p.Prompt, p.FallbackTagline)
	if res.Fallback {
		fmt.Fprintf(cmd.ErrOrStderr(), "fallback: %v\n", res.Err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return nil
}

func runContent(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	out, err := site.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
