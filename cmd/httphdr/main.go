// Command httphdr parses HTTP header lines and prints their structure.
//
// Usage:
//
//	httphdr [flags] ["Name: value" ...]
//
// Lines are taken from the arguments or, when there are none, from standard input.
// Supported headers: ETag, If-Match, If-None-Match, Forwarded, Host, Origin.
//
// Flags:
//
//	-format string  output format, json or text (default "json")
//	-strict         stop at the first rejected line
//	-dev            use the developer log handler
//	-quiet          disable logging
//	-v              log every parsed line
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/inspect"
	"github.com/ghettovoice/httphdr/internal/log"
)

const errUnknownFormat errorutil.Error = "unknown output format"

type config struct {
	format  string
	strict  bool
	dev     bool
	quiet   bool
	verbose bool
	lines   []string
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("httphdr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.format, "format", "json", "output format, json or text")
	fs.BoolVar(&cfg.strict, "strict", false, "stop at the first rejected line")
	fs.BoolVar(&cfg.dev, "dev", false, "use the developer log handler")
	fs.BoolVar(&cfg.quiet, "quiet", false, "disable logging")
	fs.BoolVar(&cfg.verbose, "v", false, "log every parsed line")
	if err := fs.Parse(args); err != nil {
		return config{}, errtrace.Wrap(err)
	}

	if cfg.format != "json" && cfg.format != "text" {
		return config{}, errtrace.Wrap(errorutil.NewWrapperError(errUnknownFormat, cfg.format))
	}
	cfg.lines = fs.Args()
	return cfg, nil
}

func (cfg config) logger(stderr io.Writer) *slog.Logger {
	switch {
	case cfg.quiet:
		return log.Noop
	case cfg.dev:
		return log.NewDev(stderr)
	}
	lvl := slog.LevelWarn
	if cfg.verbose {
		lvl = slog.LevelDebug
	}
	return log.New(stderr, lvl)
}

func (cfg config) reporter(stdout io.Writer) inspect.Reporter {
	if cfg.format == "text" {
		return inspect.NewTextReporter(stdout)
	}
	return inspect.NewJSONReporter(stdout)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}

	in := inspect.New(
		cfg.reporter(stdout),
		inspect.WithLogger(cfg.logger(stderr)),
		inspect.WithStrict(cfg.strict),
	)

	src := stdin
	if len(cfg.lines) > 0 {
		src = strings.NewReader(strings.Join(cfg.lines, "\n"))
	}
	return errtrace.Wrap(in.Run(ctx, src))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
