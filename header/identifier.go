package header

import (
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/types"
)

// IdentifierKind tells which form a [Identifier] has.
type IdentifierKind uint8

const (
	_ IdentifierKind = iota
	// IdentObfuscated is an opaque label assigned by a proxy, e.g. "_hidden".
	IdentObfuscated
	// IdentIPv4 is an IPv4 address with an optional port.
	IdentIPv4
	// IdentIPv6 is an IPv6 address with an optional port.
	IdentIPv6
	// IdentUnknown is the literal "unknown".
	IdentUnknown
)

func (k IdentifierKind) String() string {
	switch k {
	case IdentObfuscated:
		return "obfuscated"
	case IdentIPv4:
		return "ipv4"
	case IdentIPv6:
		return "ipv6"
	case IdentUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Identifier is a node of the Forwarded header: the value of a "by" or "for" directive.
// The zero value is not a valid identifier and marks an absent one.
type Identifier struct {
	kind  IdentifierKind
	token string
	ip    netip.Addr
	port  OptPort
}

// ObfuscatedIdentifier returns an obfuscated identifier holding token.
func ObfuscatedIdentifier(token string) Identifier {
	return Identifier{kind: IdentObfuscated, token: token}
}

// IPv4Identifier returns an IPv4 identifier.
func IPv4Identifier(addr IPv4Addr, port OptPort) Identifier {
	return Identifier{kind: IdentIPv4, ip: addr.Addr(), port: port}
}

// IPv6Identifier returns an IPv6 identifier.
func IPv6Identifier(addr IPv6Addr, port OptPort) Identifier {
	return Identifier{kind: IdentIPv6, ip: addr.Addr(), port: port}
}

// UnknownIdentifier returns the "unknown" identifier.
func UnknownIdentifier() Identifier { return Identifier{kind: IdentUnknown} }

// ParseIdentifier parses a Forwarded node.
//
// Quoted values hold a bracketed IPv6 address with an optional port, the literal "unknown",
// or an obfuscated token. Unquoted values must be an IPv4 address with an optional port.
func ParseIdentifier(s string) (Identifier, error) {
	sp := grammar.NewSpan(s)
	inner, err := sp.Enclosed('"')
	if err != nil {
		return errtrace.Wrap2(parseIPv4Identifier(sp))
	}

	if rest, err := inner.StripPrefix("["); err == nil && inner.Len() > 2 {
		if host, tail, found := rest.SplitOnce(']'); found {
			return errtrace.Wrap2(parseIPv6Identifier(host, tail))
		}
	}

	if inner.String() == "unknown" {
		return UnknownIdentifier(), nil
	}
	return ObfuscatedIdentifier(strings.Clone(inner.String())), nil
}

func parseIPv4Identifier(sp grammar.Span) (Identifier, error) {
	host, port, found := sp.SplitOnce(':')
	addr, err := grammar.Parse(host, types.ParseIPv4Addr)
	if err != nil {
		return Identifier{}, errtrace.Wrap(err)
	}
	optPort, err := types.ParseOptPort(port, found)
	if err != nil {
		return Identifier{}, errtrace.Wrap(err)
	}
	return IPv4Identifier(addr, optPort), nil
}

// parseIPv6Identifier parses the bracketed host and whatever follows the closing bracket.
func parseIPv6Identifier(host, tail grammar.Span) (Identifier, error) {
	addr, err := grammar.Parse(host, types.ParseIPv6Addr)
	if err != nil {
		return Identifier{}, errtrace.Wrap(err)
	}
	if tail.IsEmpty() {
		return IPv6Identifier(addr, OptPort{}), nil
	}

	port, err := tail.StripPrefix(":")
	if err != nil {
		return Identifier{}, errtrace.Wrap(err)
	}
	optPort, err := types.ParseOptPort(port, true)
	if err != nil {
		return Identifier{}, errtrace.Wrap(err)
	}
	return IPv6Identifier(addr, optPort), nil
}

// Kind returns the identifier form.
func (id Identifier) Kind() IdentifierKind { return id.kind }

// IsZero reports whether the identifier is the zero value.
func (id Identifier) IsZero() bool { return id.kind == 0 }

// Token returns the obfuscated label, if the identifier is obfuscated.
func (id Identifier) Token() (string, bool) {
	return id.token, id.kind == IdentObfuscated
}

// IPv4 returns the address and port, if the identifier is an IPv4 node.
func (id Identifier) IPv4() (IPv4Addr, OptPort, bool) {
	if id.kind != IdentIPv4 {
		return IPv4Addr{}, OptPort{}, false
	}
	addr, _ := types.IPv4AddrFrom(id.ip)
	return addr, id.port, true
}

// IPv6 returns the address and port, if the identifier is an IPv6 node.
func (id Identifier) IPv6() (IPv6Addr, OptPort, bool) {
	if id.kind != IdentIPv6 {
		return IPv6Addr{}, OptPort{}, false
	}
	addr, _ := types.IPv6AddrFrom(id.ip)
	return addr, id.port, true
}

// String returns the node the way it appears in the header, quoted where the grammar
// requires it. IPv6 nodes, "unknown" and obfuscated tokens come out double-quoted.
func (id Identifier) String() string {
	switch id.kind {
	case IdentObfuscated:
		return `"` + id.token + `"`
	case IdentIPv4:
		if id.port.Valid {
			return id.ip.String() + ":" + id.port.String()
		}
		return id.ip.String()
	case IdentIPv6:
		if id.port.Valid {
			return `"[` + id.ip.String() + "]:" + id.port.String() + `"`
		}
		return `"[` + id.ip.String() + `]"`
	case IdentUnknown:
		return `"unknown"`
	default:
		return ""
	}
}

// GoString returns a debug representation of the identifier.
func (id Identifier) GoString() string {
	return "header.Identifier{" + id.kind.String() + " " + strconv.Quote(id.String()) + "}"
}

// Equal compares this identifier with another for equality.
func (id Identifier) Equal(val any) bool {
	var other Identifier
	switch v := val.(type) {
	case Identifier:
		other = v
	case *Identifier:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return id == other
}

// MarshalText implements [encoding.TextMarshaler].
func (id Identifier) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *Identifier) UnmarshalText(text []byte) error {
	v, err := ParseIdentifier(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*id = v
	return nil
}
