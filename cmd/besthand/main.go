package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/besthand/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"HCL configuration file" default:"besthand.hcl" env:"BESTHAND_CONFIG" type:"path"`
	Debug   bool             `short:"d" help:"Enable debug logging"`
	NoColor bool             `help:"Disable colored output"`

	Best  BestCmd  `cmd:"" help:"Find the best 5-card hand in 7 cards"`
	Wild  WildCmd  `cmd:"" help:"Find the best hand with ?B (clubs/spades) and ?R (hearts/diamonds) jokers wild"`
	Batch BatchCmd `cmd:"" help:"Evaluate one hand per line from a file"`
}

// App carries what every command needs
type App struct {
	Ctx    context.Context
	Config *config.Config
	Logger *log.Logger
	Clock  quartz.Clock
	Out    io.Writer
	styles styles
}

func newApp(cli *CLI, out io.Writer, clock quartz.Clock) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", cli.Config, err)
	}

	level := cfg.Level()
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})
	logger.Debug("loaded config", "file", cli.Config, "hand_size", cfg.HandSize, "workers", cfg.Batch.Workers)

	color := *cfg.Output.Color && !cli.NoColor
	return &App{
		Ctx:    context.Background(),
		Config: cfg,
		Logger: logger,
		Clock:  clock,
		Out:    out,
		styles: newStyles(out, color),
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("besthand"),
		kong.Description("Pick the best five card poker hand out of seven, jokers optional"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(&cli, os.Stdout, quartz.NewReal())
	ctx.FatalIfErrorf(err)
	app.Ctx = setupSignalHandler(app.Logger)

	if err := ctx.Run(app); err != nil {
		app.Logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// setupSignalHandler creates a context that is cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received signal, stopping", "signal", sig.String())
		cancel()
	}()

	return ctx
}
