package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Drolfothesgnir/bbcode/bbcode"
	"github.com/Drolfothesgnir/bbcode/catalog"
	"github.com/Drolfothesgnir/bbcode/util"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run converts the files named in args, or stdin when there are none, and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := util.NewFlagSet("bbcode")
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: bbcode [flags] [files...]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	log.Logger = newLogger(stderr, false)

	// reading app.env config file, the environment and the flags
	config, err := util.LoadConfig(".", flags)
	if err != nil {
		log.Error().Err(err).Msg("cannot read config")
		return 1
	}

	log.Logger = newLogger(stderr, config.IsDevelopment())

	parser, err := newParser(config)
	if err != nil {
		log.Error().Err(err).Msg("cannot create parser")
		return 1
	}

	// catching interrupt signals, so the pending inputs are skipped
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	conv := &converter{
		parser:      parser,
		maxInputLen: config.MaxInputLen,
		outputDir:   config.OutputDir,
		workers:     config.Workers,
	}

	if flags.NArg() == 0 {
		err = conv.convertStream("stdin", stdin, stdout)
	} else {
		err = conv.convertFiles(ctx, flags.Args(), stdout)
	}

	if err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return 1
	}

	return 0
}

// newLogger writes human-friendly logs in development or to a terminal, and JSON otherwise.
func newLogger(w io.Writer, development bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if development {
		level = zerolog.DebugLevel
	}

	if development || isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newParser builds the parser from the configured catalog, or from the built-in one.
func newParser(config util.Config) (*bbcode.Parser, error) {
	var (
		cat *catalog.Catalog
		err error
	)

	if config.CatalogPath == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(config.CatalogPath)
	}
	if err != nil {
		return nil, err
	}

	dict, err := cat.Dictionary()
	if err != nil {
		return nil, err
	}

	return bbcode.NewParser(dict, config.Limits())
}
