package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/mcptool"
	"github.com/katalvlaran/gridpath/internal/stream"
	"github.com/katalvlaran/gridpath/internal/tui"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// newApp builds the command tree. Output streams are parameters of the
// subcommand actions so tests can capture them.
func newApp() *cli.Command {
	return newAppWithOutput(os.Stdout, os.Stderr)
}

func newAppWithOutput(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "gridpath",
		Usage:     "shortest paths on 4-connected grids, with animated search",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "HCL settings file",
				Sources: cli.EnvVars("GRIDPATH_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("GRIDPATH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				Sources: cli.EnvVars("GRIDPATH_LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			tuiCommand(),
			serveCommand(stderr),
			solveCommand(stdout, stderr),
			mcpCommand(stderr),
		},
	}
}

// Shared flags; each command picks the ones it honours.
func rowsFlag() cli.Flag {
	return &cli.IntFlag{Name: "rows", Usage: "board height", Sources: cli.EnvVars("GRIDPATH_ROWS")}
}

func colsFlag() cli.Flag {
	return &cli.IntFlag{Name: "cols", Usage: "board width", Sources: cli.EnvVars("GRIDPATH_COLS")}
}

func tickFlag() cli.Flag {
	return &cli.DurationFlag{Name: "tick", Usage: "replay step interval", Sources: cli.EnvVars("GRIDPATH_TICK")}
}

func densityFlag() cli.Flag {
	return &cli.FloatFlag{Name: "density", Usage: "random wall density in [0,1]", Sources: cli.EnvVars("GRIDPATH_DENSITY")}
}

func seedFlag() cli.Flag {
	return &cli.IntFlag{Name: "seed", Usage: "random wall seed", Sources: cli.EnvVars("GRIDPATH_SEED")}
}

// settings resolves the config file and applies flag and environment
// overrides, then validates the result.
func settings(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	if cmd.IsSet("rows") {
		cfg.Rows = int(cmd.Int("rows"))
	}
	if cmd.IsSet("cols") {
		cfg.Cols = int(cmd.Int("cols"))
	}
	if cmd.IsSet("tick") {
		cfg.Tick = cmd.Duration("tick")
	}
	if cmd.IsSet("density") {
		cfg.Density = cmd.Float("density")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = int64(cmd.Int("seed"))
	}
	if cmd.IsSet("listen") {
		cfg.Listen = cmd.String("listen")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// cornerBoard returns a randomized board with start top-left and end
// bottom-right.
func cornerBoard(cfg config.Config) (*editor.Board, error) {
	b, err := editor.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if err := b.SetStart(grid.Cell{}); err != nil {
		return nil, err
	}
	if err := b.SetEnd(grid.Cell{Row: cfg.Rows - 1, Col: cfg.Cols - 1}); err != nil {
		return nil, err
	}
	if err := b.Randomize(cfg.Density, cfg.Seed); err != nil {
		return nil, err
	}
	return b, nil
}

func tuiCommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "interactive terminal editor",
		Flags: []cli.Flag{
			rowsFlag(), colsFlag(), tickFlag(), densityFlag(), seedFlag(),
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file (the screen is in use)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			log := logging.Discard()
			if path := cmd.String("log-file"); path != "" {
				f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return cli.Exit(fmt.Sprintf("open log file: %v", err), 2)
				}
				defer f.Close()
				log = logging.New(cfg.LogLevel, cfg.LogFormat, f)
			}

			board, err := cornerBoard(cfg)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			log.Info("tui starting", "rows", cfg.Rows, "cols", cfg.Cols, "tick", cfg.Tick.String())
			app := tui.NewApp(screen, board, tui.Options{
				Tick:    cfg.Tick,
				Density: cfg.Density,
				Seed:    cfg.Seed + 1,
				Logger:  log,
			})
			err = app.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func serveCommand(stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "HTTP API with websocket replay streaming",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Usage: "listen address", Sources: cli.EnvVars("GRIDPATH_LISTEN")},
			tickFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			log := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
			return serve(ctx, cfg, log)
		},
	}
}

// serve runs the HTTP server until ctx is done.
func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := stream.NewHub(log)
	go hub.Run(hubCtx)

	srv := stream.NewServer(hub, stream.Options{Tick: cfg.Tick, Logger: log})
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Listen, "tick", cfg.Tick.String())
		log.Info("websocket endpoint", "url", "ws://"+cfg.Listen+"/ws")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func solveCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "search a random board and print it",
		Flags: []cli.Flag{
			rowsFlag(), colsFlag(), densityFlag(), seedFlag(),
			&cli.BoolFlag{Name: "no-visited", Usage: "do not mark visited cells"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			log := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

			board, err := cornerBoard(cfg)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			res := board.Search()
			log.Debug("solved", "rows", cfg.Rows, "cols", cfg.Cols, "seed", cfg.Seed,
				"visited", len(res.Visited), "pushed", res.Pushed, "found", res.Found)

			visited := res.Visited
			if cmd.Bool("no-visited") {
				visited = nil
			}
			fmt.Fprintln(stdout, editor.Render(board, visited, res.Path))
			fmt.Fprintln(stdout)
			fmt.Fprintf(stdout, "visited: %d\n", len(res.Visited))
			if !res.Found {
				fmt.Fprintln(stdout, "path: none")
				return cli.Exit("", 1)
			}
			fmt.Fprintf(stdout, "path: %d cells, cost %d\n", len(res.Path), res.Cost)
			return nil
		},
	}
}

func mcpCommand(stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve Model Context Protocol tools over stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			// stdout carries the protocol; logs go to stderr.
			log := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
			log.Info("MCP stdio server ready", "name", mcptool.Name, "version", mcptool.Version)
			return mcptool.New(log).ServeStdio()
		},
	}
}
