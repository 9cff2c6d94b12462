package header

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Forwarded represents the Forwarded header.
//
// By is the zero [Identifier] when the directive is absent. Host and Proto are empty when absent
// and otherwise hold owned copies of the directive values.
type Forwarded struct {
	// By is the interface where the request came in to the proxy.
	By Identifier `json:"by"`
	// For lists the client and the proxies of the chain, in order of appearance.
	For []Identifier `json:"for,omitempty"`
	// Host is the Host request header as received by the proxy.
	Host string `json:"host,omitempty"`
	// Proto is the protocol used to make the request, typically "http" or "https".
	Proto string `json:"proto,omitempty"`
}

// ParseForwarded parses the Forwarded header value.
//
// Directives are separated by ';'. Unknown directive names are rejected.
// A "for" directive may list several nodes separated by ',' as long as each following
// node repeats the "for=" prefix.
func ParseForwarded(s string) (Forwarded, error) {
	var fwd Forwarded
	for pair := range grammar.NewSpan(s).Split(';') {
		key, val, ok := pair.SplitOnce('=')
		if !ok {
			return Forwarded{}, errtrace.Wrap(grammar.Expect("a key=value pair"))
		}

		switch key.String() {
		case "by":
			id, err := grammar.Parse(val, ParseIdentifier)
			if err != nil {
				return Forwarded{}, errtrace.Wrap(err)
			}
			fwd.By = id
		case "for":
			if err := fwd.appendFor(val); err != nil {
				return Forwarded{}, errtrace.Wrap(err)
			}
		case "host":
			fwd.Host = strings.Clone(val.String())
		case "proto":
			fwd.Proto = strings.Clone(val.String())
		default:
			return Forwarded{}, errtrace.Wrap(grammar.Expect("one of by, for, host, proto"))
		}
	}
	return fwd, nil
}

func (fwd *Forwarded) appendFor(val grammar.Span) error {
	first := true
	for elem := range val.Split(',') {
		elem = elem.TrimLeft(" ")
		if !first {
			rest, err := elem.StripPrefix("for=")
			if err != nil {
				return errtrace.Wrap(grammar.Expect("another `for=` value, or a semicolon"))
			}
			elem = rest
		}
		first = false

		id, err := grammar.Parse(elem, ParseIdentifier)
		if err != nil {
			return errtrace.Wrap(err)
		}
		fwd.For = append(fwd.For, id)
	}
	return nil
}

// Equal compares this header with another for equality.
func (fwd Forwarded) Equal(val any) bool {
	var other Forwarded
	switch v := val.(type) {
	case Forwarded:
		other = v
	case *Forwarded:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return fwd.By == other.By &&
		slices.Equal(fwd.For, other.For) &&
		fwd.Host == other.Host &&
		fwd.Proto == other.Proto
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (fwd *Forwarded) UnmarshalText(text []byte) error {
	v, err := ParseForwarded(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*fwd = v
	return nil
}
