// Package header parses the values of a fixed set of standard HTTP header fields into
// structured, validated Go values.
//
// # Overview
//
// Supported headers and their entry points:
//
//	ETag           ParseEtag
//	If-Match       ParseIfMatch
//	If-None-Match  ParseIfNoneMatch
//	Forwarded      ParseForwarded (directive values via ParseIdentifier)
//	Host           ParseHost
//	Origin         ParseOrigin
//
// Every entry point takes the already extracted field value, without the name and the
// colon, and returns either the value or an [Error]. All of them satisfy [Parser].
// The types also implement [encoding.TextUnmarshaler] on top of the same parsers.
//
//	etag, err := header.ParseEtag(`W/"0815"`)
//	fwd, err := header.ParseForwarded(`for=192.0.2.60;proto=http;by=203.0.113.43`)
//
// # Memory
//
// Parsed values reference the input string wherever the grammar does not transform it:
// [Etag.Tag], [Host.Host], [Origin.Scheme] and [Origin.Hostname] are substrings of the input.
// [Forwarded.Host], [Forwarded.Proto] and obfuscated identifiers are owned copies.
//
// # Errors
//
// Parsing stops at the first problem and the error is returned as is; list headers never
// return partial results. [Error.Pos] is always 0, only [Error.Expected] describes the failure.
// Out of range ports and malformed delimiters are reported the same way.
//
// # Comparison
//
// [Etag], [Identifier], [Host], [Origin] and the address and port types are comparable with ==
// and can be used as map keys. Weak and strong entity tags with the same text are different
// values. List headers provide an Equal method.
//
// # Concurrency
//
// Parsers keep no state between calls and parsed values are immutable, so both can be used
// from multiple goroutines without synchronization.
package header
