// Package log provides logging utilities.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

var newHandler = slogformatter.NewFormatterHandler(
	grammarErrorFormatter("error"),
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(e grammar.Error) slog.Value {
		return grammarErrorValue(e.Error(), e)
	}),
)

// grammarErrorFormatter expands a grammar error found anywhere in the chain of the error
// stored under key. Other errors are left to the formatters that follow.
func grammarErrorFormatter(key string) slogformatter.Formatter {
	return func(_ []string, attr slog.Attr) (slog.Value, bool) {
		if attr.Key != key || attr.Value.Kind() != slog.KindAny {
			return attr.Value, false
		}
		err, ok := attr.Value.Any().(error)
		if !ok {
			return attr.Value, false
		}
		var gerr grammar.Error
		if !errors.As(err, &gerr) {
			return attr.Value, false
		}
		return grammarErrorValue(err.Error(), gerr), true
	}
}

func grammarErrorValue(msg string, e grammar.Error) slog.Value {
	return slog.GroupValue(
		slog.String("message", msg),
		slog.Int("pos", e.Pos),
		slog.String("expected", e.Expected),
	)
}

// NewDev returns a developer logger writing to w.
func NewDev(w io.Writer) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// New returns a console logger writing to w.
func New(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
