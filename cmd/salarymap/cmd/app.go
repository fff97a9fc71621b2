package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarymap/internal/config"
	"github.com/fr4nk3nst1ner/salarymap/internal/loader"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
	"github.com/fr4nk3nst1ner/salarymap/internal/render"
	"github.com/fr4nk3nst1ner/salarymap/internal/session"
	"github.com/fr4nk3nst1ner/salarymap/internal/ui"
)

// app is the wiring shared by the sub-commands.
type app struct {
	cfg    *config.AppConfig
	logger *pterm.Logger
	out    io.Writer
	errOut io.Writer

	records []models.Record
	regions []models.Region
}

// newApp resolves the configuration (file, then environment, then flags) and
// builds the logger.
func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset = opts.dataset
	}
	if flags.Changed("geo") {
		cfg.Geo = opts.geo
	}
	if flags.Changed("chart-dir") {
		cfg.Charts.Dir = opts.chartDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.silence {
		cfg.Banner = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := ui.NewLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}, nil
}

func (a *app) banner() {
	ui.PrintBanner(a.out, !a.cfg.Banner)
}

// load reads the dataset and, when configured, the boundary regions. A
// boundary resource that cannot be read only costs the country names.
func (a *app) load(ctx context.Context) error {
	l := loader.New(a.logger, a.errOut)

	records, report, err := l.LoadDataset(ctx, a.cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	a.records = records
	a.logger.Debug("dataset ready", a.logger.Args("rows", report.Rows, "loaded", report.Loaded))

	if a.cfg.Geo == "" {
		return nil
	}
	regions, err := l.LoadRegions(ctx, a.cfg.Geo)
	if err != nil {
		a.logger.Warn("boundaries unavailable, listing countries by code", a.logger.Args("source", a.cfg.Geo, "error", err.Error()))
		return nil
	}
	a.regions = regions
	return nil
}

// dispatcher builds the terminal dashboard plus the PNG charts when a chart
// directory is set.
func (a *app) dispatcher() *render.Dispatcher {
	d := render.NewDispatcher(render.TerminalSurfaces(a.out, a.regions, a.cfg.Display.MaxRows, a.cfg.Display.BarWidth)...)
	if a.cfg.Charts.Dir != "" {
		for _, s := range render.ChartSurfaces(render.ChartOptions{
			Dir:    a.cfg.Charts.Dir,
			Width:  a.cfg.Charts.Width,
			Height: a.cfg.Charts.Height,
			Logger: a.logger,
		}) {
			d.Register(s)
		}
	}
	return d
}

func (a *app) session(filters config.FiltersConfig, opts ...session.Option) (*session.Session, error) {
	state, err := filters.State()
	if err != nil {
		return nil, err
	}
	opts = append([]session.Option{
		session.WithRegions(a.regions),
		session.WithLogger(a.logger),
		session.WithState(state),
	}, opts...)
	return session.New(a.records, a.dispatcher(), opts...), nil
}
