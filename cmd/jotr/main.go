package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"example.com/jotr/internal/app"
	"example.com/jotr/pkg/clipboard"
	"example.com/jotr/pkg/config"
	"example.com/jotr/pkg/logs"
)

// options are the command line settings.
type options struct {
	configPath string
	file       string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("jotr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: jotr [-config file] [path]")
		fs.PrintDefaults()
	}
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "configuration file (default $JOTR_CONFIG or ~/.jotr/config.toml)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fs.Usage()
		return opts, errors.New("at most one file can be opened")
	}
	return opts, nil
}

func loadConfig(opts options) (*config.Config, error) {
	if opts.configPath != "" {
		return config.Load(opts.configPath)
	}
	return config.LoadDefault()
}

// newRunner builds the editor for opts. A file that does not exist yet is
// opened as an empty document saved under that name.
func newRunner(opts options) (*app.Runner, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	r := app.New(cfg)
	r.Logger = logs.NewFromEnv()
	r.Clipboard = clipboard.New()
	if opts.file == "" {
		return r, nil
	}
	if err := r.LoadFile(opts.file); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.Logger.Close()
			return nil, err
		}
		r.File.Path = opts.file
	}
	return r, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "jotr:", err)
		os.Exit(2)
	}
	r, err := newRunner(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jotr:", err)
		os.Exit(1)
	}
	if err := r.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "jotr:", err)
		os.Exit(1)
	}
}
