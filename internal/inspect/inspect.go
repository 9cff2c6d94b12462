// Package inspect parses raw "Name: value" header lines with the parsers of the header
// package and reports the outcome of every line.
package inspect

//go:generate errtrace -w .
//go:generate mockgen -source=inspect.go -destination=mock_reporter_test.go -package=inspect_test Reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/textproto"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
	"github.com/ghettovoice/httphdr/internal/util"
)

const (
	// ErrMalformedLine is returned for a line without a "Name:" prefix.
	ErrMalformedLine errorutil.Error = "malformed header line"
	// ErrUnsupportedHeader is returned for a header the inspector has no parser for.
	ErrUnsupportedHeader errorutil.Error = "unsupported header"
)

// maxLogValue limits the header values written to the log.
const maxLogValue = 128

// Result is the outcome of inspecting a single header line.
type Result struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Parsed any    `json:"parsed,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Reporter receives inspection results.
type Reporter interface {
	Report(res Result) error
}

type valueParser func(s string) (any, error)

func erase[T any](prs header.Parser[T]) valueParser {
	return func(s string) (any, error) {
		v, err := prs(s)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return v, nil
	}
}

// parsers are keyed by canonical header names.
var parsers = map[string]valueParser{
	"Etag":          erase(header.ParseEtag),
	"If-Match":      erase(header.ParseIfMatch),
	"If-None-Match": erase(header.ParseIfNoneMatch),
	"Forwarded":     erase(header.ParseForwarded),
	"Host":          erase(header.ParseHost),
	"Origin":        erase(header.ParseOrigin),
}

// Supported reports whether the inspector can parse the named header.
func Supported(name string) bool {
	_, ok := parsers[textproto.CanonicalMIMEHeaderKey(util.TrimSP(name))]
	return ok
}

// Inspector parses header lines and hands the results to a [Reporter].
type Inspector struct {
	rep    Reporter
	log    *slog.Logger
	strict bool
}

// New creates an inspector reporting to rep.
func New(rep Reporter, opts ...Option) *Inspector {
	o := Options{Logger: log.Noop}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Noop
	}
	return &Inspector{
		rep:    rep,
		log:    o.Logger,
		strict: o.Strict,
	}
}

// Inspect parses a single "Name: value" line.
// The returned result carries the failure text as well, the error is for programmatic use.
func (in *Inspector) Inspect(line string) (Result, error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return Result{Value: line, Err: ErrMalformedLine.Error()}, errtrace.Wrap(ErrMalformedLine)
	}

	res := Result{
		Name:  textproto.CanonicalMIMEHeaderKey(util.TrimSP(name)),
		Value: util.TrimSP(value),
	}
	prs, ok := parsers[res.Name]
	if !ok {
		err := errorutil.NewWrapperError(ErrUnsupportedHeader, res.Name)
		res.Err = err.Error()
		return res, errtrace.Wrap(err)
	}

	parsed, err := prs(res.Value)
	if err != nil {
		res.Err = err.Error()
		return res, errtrace.Wrap(err)
	}
	res.Parsed = parsed
	return res, nil
}

// Run inspects every non-blank line read from r and reports it.
//
// In strict mode the first failing line stops the run and its error is returned.
// Otherwise all failures are collected and returned together once r is drained.
// Reporter errors and read errors always stop the run.
func (in *Inspector) Run(ctx context.Context, r io.Reader) error {
	var errs []error

	sc := bufio.NewScanner(r)
	for num := 1; sc.Scan(); num++ {
		if err := ctx.Err(); err != nil {
			return errtrace.Wrap(err)
		}

		line := sc.Text()
		if util.TrimSP(line) == "" {
			continue
		}

		res, err := in.Inspect(line)
		res.Line = num
		if err != nil {
			msg := "header line rejected"
			if errorutil.IsGrammarErr(err) {
				msg = "header value malformed"
			}
			in.log.LogAttrs(ctx, slog.LevelWarn, msg,
				slog.Int("line", num),
				slog.String("name", res.Name),
				slog.Any("value", log.StringValue(util.Ellipsis(res.Value, maxLogValue))),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("line %d: %w", num, err))
		} else {
			in.log.LogAttrs(ctx, slog.LevelDebug, "header line parsed",
				slog.Int("line", num),
				slog.String("name", res.Name),
				slog.Any("parsed", log.FmtValue(res.Parsed, false)),
			)
		}

		if rerr := in.rep.Report(res); rerr != nil {
			return errtrace.Wrap(rerr)
		}
		if err != nil && in.strict {
			return errtrace.Wrap(fmt.Errorf("line %d: %w", num, err))
		}
	}
	if err := sc.Err(); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(errorutil.JoinPrefix("inspect:", errs...))
}
