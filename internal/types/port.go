package types

import (
	"cmp"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Port is a TCP/UDP port number.
type Port uint16

// ParsePort parses a decimal port number.
func ParsePort(s string) (Port, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(grammar.Expect("port"))
	}
	return Port(n), nil
}

func (p Port) String() string { return strconv.FormatUint(uint64(p), 10) }

// Compare returns -1, 0 or +1 comparing p and o numerically.
func (p Port) Compare(o Port) int { return cmp.Compare(p, o) }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Port) UnmarshalText(text []byte) error {
	v, err := ParsePort(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*p = v
	return nil
}

// OptPort is a port that may be absent. The zero value has no port.
type OptPort struct {
	Port  Port
	Valid bool
}

// SomePort returns a present [OptPort] holding p.
func SomePort(p Port) OptPort { return OptPort{Port: p, Valid: true} }

// Get returns the port and whether it is present.
func (o OptPort) Get() (Port, bool) { return o.Port, o.Valid }

func (o OptPort) String() string {
	if !o.Valid {
		return ""
	}
	return o.Port.String()
}

// MarshalJSON renders a present port as a number and an absent one as null.
func (o OptPort) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(o.Port.String()), nil
}

// ParseOptPort parses the optional port that follows a ':' delimiter.
// An absent delimiter yields no port; a present delimiter requires a valid port.
func ParseOptPort(sp grammar.Span, found bool) (OptPort, error) {
	if !found {
		return OptPort{}, nil
	}
	p, err := grammar.Parse(sp, ParsePort)
	if err != nil {
		return OptPort{}, errtrace.Wrap(err)
	}
	return SomePort(p), nil
}
