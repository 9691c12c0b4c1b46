package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/setup"
	"github.com/anuntech/expense-backend/internal/setup/config"
)

var cli struct {
	EnvFile string `name:"env-file" default:".env" help:"Optional dotenv file loaded before reading configuration."`

	Serve  serveCmd  `cmd:"" default:"1" help:"Run the HTTP export gateway."`
	Report reportCmd `cmd:"" help:"Render a report for the configured store into a file."`
}

type serveCmd struct {
	ShutdownTimeout time.Duration `name:"shutdown-timeout" default:"30s" help:"How long in-flight requests get on shutdown."`
}

type reportCmd struct {
	Format string `enum:"excel,xlsx,spreadsheet,pdf,document" default:"excel" help:"Report format."`
	Out    string `required:"" help:"Destination file."`
	At     string `help:"Generate as of this RFC 3339 instant instead of now."`
}

func loadConfig() (*config.Config, error) {
	config.LoadEnvFile(cli.EnvFile)
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *serveCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeDeps, err := setup.NewDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDeps(context.Background())

	sm := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      setup.Server(cfg, deps),
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.L().Infof("server is running with port %s", cfg.Port)
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info("received terminate, graceful shutdown")

		tc, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
		defer cancel()
		return sm.Shutdown(tc)
	})

	return g.Wait()
}

func (r *reportCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := models.ParseReportFormat(r.Format)
	if err != nil {
		return err
	}

	now := time.Now().In(cfg.Location())
	if r.At != "" {
		at, err := time.Parse(time.RFC3339, r.At)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		now = at.In(cfg.Location())
	}

	ctx := context.Background()
	deps, closeDeps, err := setup.NewDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDeps(ctx)

	payload, err := setup.RenderReport(ctx, deps, format, now)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.Out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.Out, payload, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.L().Infof("wrote %s report to %s (%d bytes)", format, r.Out, len(payload))
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("expense-backend"),
		kong.Description("Expense tracking API with weekly, monthly and yearly reports."),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
