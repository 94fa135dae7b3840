package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"vimbo/internal/ui/state"
)

// ErrInvalidPageSize is returned when --page-size is below 1
var ErrInvalidPageSize = errors.New("page size must be at least 1")

// Config represents the command line configuration
type Config struct {
	InitialQuery string // filter applied before the first frame
	PageSize     int    // rows moved by PageUp/PageDown
	List         bool   // print matches instead of starting the UI
	LogPath      string // debug log file, empty to discard logs
	ShowVersion  bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PageSize: state.DefaultPageSize,
	}
}

// Parse builds a Config from command line arguments, not including the
// program name. Usage and flag errors are written to stderr.
// flag.ErrHelp is returned unchanged when -h or --help is given.
func Parse(args []string, stderr io.Writer) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("vimbo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.InitialQuery, "query", cfg.InitialQuery, "Initial filter query")
	fs.StringVar(&cfg.InitialQuery, "q", cfg.InitialQuery, "Initial filter query (shorthand)")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Rows moved by PageUp/PageDown")
	fs.BoolVar(&cfg.List, "list", cfg.List, "Print matching cheats and exit")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Write debug log to `file`")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: vimbo [flags]\n\nInteractive Vim cheatsheet.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected argument %q", fs.Arg(0))
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return nil, err
	}
	if cfg.PageSize < 1 {
		err := fmt.Errorf("%w: got %d", ErrInvalidPageSize, cfg.PageSize)
		fmt.Fprintln(stderr, err)
		return nil, err
	}

	return cfg, nil
}
