package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/types"
)

// Host represents the Host header.
// Host is a substring of the parsed input and is not validated.
type Host struct {
	Host string  `json:"host"`
	Port OptPort `json:"port"`
}

// ParseHost parses the Host header value: a host optionally followed by ':' and a port.
func ParseHost(s string) (Host, error) {
	host, port, found := grammar.NewSpan(s).SplitOnce(':')
	optPort, err := types.ParseOptPort(port, found)
	if err != nil {
		return Host{}, errtrace.Wrap(err)
	}
	return Host{Host: host.String(), Port: optPort}, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hdr *Host) UnmarshalText(text []byte) error {
	v, err := ParseHost(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = v
	return nil
}
