// Command solarsystem shows the planets of the solar system orbiting the sun
// on Keplerian ellipses.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"git.c3pb.de/farhaven/solarsystem/config"
	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/ui"
)

func init() {
	// GLFW and GL calls have to come from the main thread.
	runtime.LockOSThread()
}

type globalFlags struct {
	config      string
	metricsAddr string
	logLevel    string
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info", "":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf(`unknown log level %q`, lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

// setup loads the configuration and builds the orrery shared by all commands.
func setup(cmd *cobra.Command, g *globalFlags, reg prometheus.Registerer) (*config.Config, *orrery.Orrery, log.Logger, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), g.logLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(g.config, cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}

	opts := cfg.OrreryOptions()
	opts.Logger = log.With(logger, "component", "orrery")
	opts.Metrics = orrery.NewMetrics(reg)

	o, err := orrery.New(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	level.Debug(logger).Log("msg", "orrery ready", "bodies", len(opts.Bodies), "mu", opts.Mu)
	return cfg, o, logger, nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	level.Info(logger).Log("msg", "serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		level.Error(logger).Log("msg", "metrics server failed", "addr", addr, "err", err)
	}
}

func runWindow(cmd *cobra.Command, g *globalFlags) error {
	reg := prometheus.NewRegistry()
	cfg, o, logger, err := setup(cmd, g, reg)
	if err != nil {
		return err
	}

	if g.metricsAddr != "" {
		go serveMetrics(g.metricsAddr, reg, logger)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	win, err := ui.NewDrawContext(ui.Options{
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
		FPS:    cfg.UI.FPS,
		Assets: cfg.UI.Assets,
		Font:   cfg.UI.Font,
		Logger: log.With(logger, "component", "ui"),
	})
	if err != nil {
		return err
	}
	defer win.Close()

	return win.Run(ctx, o)
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "solarsystem",
		Short:         "Watch the planets orbit the sun",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, g)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "TOML configuration file")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.Float64("time-scale", 1, "initial time scale")
	pf.Int("trail-length", 8192, "maximum number of trail points per body, 0 keeps all")

	f := root.Flags()
	f.StringVar(&g.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	f.Int("width", 1200, "window width")
	f.Int("height", 800, "window height")
	f.Float64("fps", 60, "frames per second")
	f.String("assets", "assets", "texture directory")

	root.AddCommand(newPropagateCommand(g))
	return root
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "solarsystem: %s\n", err)
		os.Exit(1)
	}
}
