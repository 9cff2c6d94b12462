package inspect

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONReporter writes every result as a JSON object on its own line.
type JSONReporter struct {
	enc *jsoniter.Encoder
}

// NewJSONReporter creates a reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

// Report implements [Reporter].
func (r *JSONReporter) Report(res Result) error {
	return errtrace.Wrap(r.enc.Encode(res))
}

// TextReporter writes every result as a human readable line.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter { return &TextReporter{w: w} }

// Report implements [Reporter].
func (r *TextReporter) Report(res Result) error {
	var err error
	if res.Err != "" {
		_, err = fmt.Fprintf(r.w, "%d\t%s\terror: %s\n", res.Line, res.Name, res.Err)
	} else {
		_, err = fmt.Fprintf(r.w, "%d\t%s\t%+v\n", res.Line, res.Name, res.Parsed)
	}
	return errtrace.Wrap(err)
}
