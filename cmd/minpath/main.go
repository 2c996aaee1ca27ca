// Command minpath loads an integer matrix and prints its minimal path sum
// from the top-left to the bottom-right cell.
//
// Configuration comes from the environment (MINPATH_FILE, MINPATH_QUEUE,
// MINPATH_MOVES, MINPATH_LOG_LEVEL); flags of the same name override it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vrischmann/envconfig"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/pqueue"
)

var version = "--- set from makefile ---"

// Config is read from MINPATH_* environment variables.
type Config struct {
	File     string `envconfig:"default=matrix.txt"`
	Queue    string `envconfig:"default=heap"`
	Moves    string `envconfig:"default=right-down"`
	LogLevel string `envconfig:"default=info"`
}

func main() {
	var cfg Config
	if err := envconfig.InitWithPrefix(&cfg, "MINPATH"); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	fs := flag.NewFlagSet("minpath", flag.ExitOnError)
	showVersion := fs.Bool("version", false, "show command version")
	fs.StringVar(&cfg.File, "file", cfg.File, "matrix file, one comma-separated row per line")
	fs.StringVar(&cfg.Queue, "queue", cfg.Queue, "priority queue: heap or list")
	fs.StringVar(&cfg.Moves, "moves", cfg.Moves, "allowed moves: right-down, conn4 or conn8")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println(version)
		return
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newLogger builds a text logger; unknown levels fall back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// run loads the matrix named by cfg.File, solves it and writes the result to out.
func run(cfg Config, logger *slog.Logger, out io.Writer) error {
	kind, err := pqueue.ParseKind(cfg.Queue)
	if err != nil {
		return err
	}
	moves, err := gridgraph.ParseMoves(cfg.Moves)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return fmt.Errorf("open matrix: %w", err)
	}
	defer f.Close()

	gg, err := gridgraph.Load(f, gridgraph.GridOptions{Moves: moves})
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.File, err)
	}
	logger.Info("matrix loaded", "file", cfg.File, "rows", gg.Height, "cols", gg.Width, "moves", moves, "queue", kind)

	path, sum, ok := gg.MinPathSum(dijkstra.WithQueue(kind), dijkstra.WithLogger(logger))
	if !ok {
		fmt.Fprintln(out, "no path found")
		return nil
	}

	fmt.Fprintf(out, "Shortest path found: %v\n", path)
	fmt.Fprintf(out, "total cost: %d\n", sum)

	return nil
}
