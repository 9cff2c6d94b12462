package header

//go:generate errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/types"
)

// Error is returned by every parser of the package when the input is malformed.
// Use [errors.As] to inspect it.
type Error = grammar.Error

// Parser converts a raw header value to a typed value.
type Parser[T any] = grammar.Parser[T]

// Port represents a TCP/UDP port number.
type Port = types.Port

// OptPort represents a port that may be absent.
type OptPort = types.OptPort

// IPv4Addr represents a validated IPv4 address.
type IPv4Addr = types.IPv4Addr

// IPv6Addr represents a validated IPv6 address.
type IPv6Addr = types.IPv6Addr

// SomePort returns a present [OptPort] holding p.
func SomePort(p Port) OptPort { return types.SomePort(p) }

// ParsePort parses a decimal port number.
func ParsePort(s string) (Port, error) { return errtrace.Wrap2(types.ParsePort(s)) }

// ParseIPv4Addr parses a dotted decimal IPv4 address.
func ParseIPv4Addr(s string) (IPv4Addr, error) { return errtrace.Wrap2(types.ParseIPv4Addr(s)) }

// ParseIPv6Addr parses a textual IPv6 address.
func ParseIPv6Addr(s string) (IPv6Addr, error) { return errtrace.Wrap2(types.ParseIPv6Addr(s)) }

// MustParseIPv4Addr is like [ParseIPv4Addr] but panics on error.
func MustParseIPv4Addr(s string) IPv4Addr { return types.MustParseIPv4Addr(s) }

// MustParseIPv6Addr is like [ParseIPv6Addr] but panics on error.
func MustParseIPv6Addr(s string) IPv6Addr { return types.MustParseIPv6Addr(s) }

var (
	_ Parser[Etag]        = ParseEtag
	_ Parser[IfMatch]     = ParseIfMatch
	_ Parser[IfNoneMatch] = ParseIfNoneMatch
	_ Parser[Forwarded]   = ParseForwarded
	_ Parser[Identifier]  = ParseIdentifier
	_ Parser[Host]        = ParseHost
	_ Parser[Origin]      = ParseOrigin
)
