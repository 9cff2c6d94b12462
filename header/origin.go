package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/types"
)

// Origin represents the Origin header.
// Null is set for the "null" origin, in which case the other fields are empty.
// Scheme and Hostname are substrings of the parsed input.
type Origin struct {
	Null     bool    `json:"null"`
	Scheme   string  `json:"scheme,omitempty"`
	Hostname string  `json:"hostname,omitempty"`
	Port     OptPort `json:"port"`
}

// NullOrigin returns the "null" origin.
func NullOrigin() Origin { return Origin{Null: true} }

// ParseOrigin parses the Origin header value: "null" or scheme "://" hostname [ ":" port ].
func ParseOrigin(s string) (Origin, error) {
	if s == "null" {
		return NullOrigin(), nil
	}

	cur := grammar.NewCursor(s)
	scheme, err := cur.SplitOff("://")
	if err != nil {
		return Origin{}, errtrace.Wrap(err)
	}

	hostname, port, found := cur.Rest().SplitOnce(':')
	optPort, err := types.ParseOptPort(port, found)
	if err != nil {
		return Origin{}, errtrace.Wrap(err)
	}
	return Origin{
		Scheme:   scheme.String(),
		Hostname: hostname.String(),
		Port:     optPort,
	}, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hdr *Origin) UnmarshalText(text []byte) error {
	v, err := ParseOrigin(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = v
	return nil
}
