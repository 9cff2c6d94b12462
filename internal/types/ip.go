package types

import (
	"net/netip"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// IPv4Addr is a validated IPv4 address.
type IPv4Addr struct {
	addr netip.Addr
}

// ParseIPv4Addr parses a dotted decimal IPv4 address.
func ParseIPv4Addr(s string) (IPv4Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return IPv4Addr{}, errtrace.Wrap(grammar.Expect("IPv4 address"))
	}
	return IPv4Addr{addr}, nil
}

// MustParseIPv4Addr is like [ParseIPv4Addr] but panics on error.
func MustParseIPv4Addr(s string) IPv4Addr { return util.Must2(ParseIPv4Addr(s)) }

// IPv4AddrFrom wraps addr, reporting false if it is not an IPv4 address.
func IPv4AddrFrom(addr netip.Addr) (IPv4Addr, bool) {
	if !addr.Is4() {
		return IPv4Addr{}, false
	}
	return IPv4Addr{addr}, true
}

// Addr returns the underlying address.
func (a IPv4Addr) Addr() netip.Addr { return a.addr }

// IsValid reports whether a holds an address, i.e. it is not the zero value.
func (a IPv4Addr) IsValid() bool { return a.addr.IsValid() }

// Compare orders addresses the way [netip.Addr.Compare] does.
func (a IPv4Addr) Compare(o IPv4Addr) int { return a.addr.Compare(o.addr) }

// Equal reports whether a equals val, accepting IPv4Addr and *IPv4Addr.
func (a IPv4Addr) Equal(val any) bool {
	var other IPv4Addr
	switch v := val.(type) {
	case IPv4Addr:
		other = v
	case *IPv4Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a.addr == other.addr
}

func (a IPv4Addr) String() string { return a.addr.String() }

// MarshalText implements [encoding.TextMarshaler].
func (a IPv4Addr) MarshalText() ([]byte, error) { return errtrace.Wrap2(a.addr.MarshalText()) }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *IPv4Addr) UnmarshalText(text []byte) error {
	v, err := ParseIPv4Addr(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*a = v
	return nil
}

// IPv6Addr is a validated IPv6 address without a zone.
type IPv6Addr struct {
	addr netip.Addr
}

// ParseIPv6Addr parses a textual IPv6 address. Zones are rejected.
func ParseIPv6Addr(s string) (IPv6Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return IPv6Addr{}, errtrace.Wrap(grammar.Expect("IPv6 address"))
	}
	return IPv6Addr{addr}, nil
}

// MustParseIPv6Addr is like [ParseIPv6Addr] but panics on error.
func MustParseIPv6Addr(s string) IPv6Addr { return util.Must2(ParseIPv6Addr(s)) }

// IPv6AddrFrom wraps addr, reporting false if it is not a zoneless IPv6 address.
func IPv6AddrFrom(addr netip.Addr) (IPv6Addr, bool) {
	if !addr.Is6() || addr.Zone() != "" {
		return IPv6Addr{}, false
	}
	return IPv6Addr{addr}, true
}

// Addr returns the underlying address.
func (a IPv6Addr) Addr() netip.Addr { return a.addr }

// IsValid reports whether a holds an address, i.e. it is not the zero value.
func (a IPv6Addr) IsValid() bool { return a.addr.IsValid() }

// Compare orders addresses the way [netip.Addr.Compare] does.
func (a IPv6Addr) Compare(o IPv6Addr) int { return a.addr.Compare(o.addr) }

// Equal reports whether a equals val, accepting IPv6Addr and *IPv6Addr.
func (a IPv6Addr) Equal(val any) bool {
	var other IPv6Addr
	switch v := val.(type) {
	case IPv6Addr:
		other = v
	case *IPv6Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a.addr == other.addr
}

func (a IPv6Addr) String() string { return a.addr.String() }

// MarshalText implements [encoding.TextMarshaler].
func (a IPv6Addr) MarshalText() ([]byte, error) { return errtrace.Wrap2(a.addr.MarshalText()) }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *IPv6Addr) UnmarshalText(text []byte) error {
	v, err := ParseIPv6Addr(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*a = v
	return nil
}
