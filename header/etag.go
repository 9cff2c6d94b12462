package header

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Etag represents an entity tag as used by the ETag, If-Match and If-None-Match headers.
// Tag holds the text between the quotes.
type Etag struct {
	Tag  string
	Weak bool
}

// StrongEtag returns a strong entity tag.
func StrongEtag(tag string) Etag { return Etag{Tag: tag} }

// WeakEtag returns a weak entity tag.
func WeakEtag(tag string) Etag { return Etag{Tag: tag, Weak: true} }

// ParseEtag parses a single entity tag: an optional W/ followed by a quoted string.
func ParseEtag(s string) (Etag, error) {
	sp := grammar.NewSpan(s)
	rest, err := sp.StripPrefix("W/")
	weak := err == nil
	if !weak {
		rest = sp
	}

	tag, err := rest.Enclosed('"')
	if err != nil {
		return Etag{}, errtrace.Wrap(err)
	}
	return Etag{Tag: tag.String(), Weak: weak}, nil
}

func (e Etag) String() string {
	if e.Weak {
		return `W/"` + e.Tag + `"`
	}
	return `"` + e.Tag + `"`
}

// MarshalText implements [encoding.TextMarshaler].
func (e Etag) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *Etag) UnmarshalText(text []byte) error {
	v, err := ParseEtag(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*e = v
	return nil
}

// IfMatch represents the If-Match header.
// Any is set for the "*" wildcard, otherwise Etags holds the tags in input order.
type IfMatch struct {
	Any   bool   `json:"any"`
	Etags []Etag `json:"etags,omitempty"`
}

// ParseIfMatch parses the If-Match header value.
func ParseIfMatch(s string) (IfMatch, error) {
	anyTag, etags, err := parseEtagList(s)
	if err != nil {
		return IfMatch{}, errtrace.Wrap(err)
	}
	return IfMatch{Any: anyTag, Etags: etags}, nil
}

// Matches reports whether the header selects etag.
// The wildcard selects everything, otherwise the tags are compared structurally.
func (hdr IfMatch) Matches(etag Etag) bool { return hdr.Any || slices.Contains(hdr.Etags, etag) }

// Equal compares this header with another for equality.
func (hdr IfMatch) Equal(val any) bool {
	var other IfMatch
	switch v := val.(type) {
	case IfMatch:
		other = v
	case *IfMatch:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.Any == other.Any && slices.Equal(hdr.Etags, other.Etags)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hdr *IfMatch) UnmarshalText(text []byte) error {
	v, err := ParseIfMatch(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = v
	return nil
}

// IfNoneMatch represents the If-None-Match header.
// Any is set for the "*" wildcard, otherwise Etags holds the tags in input order.
type IfNoneMatch struct {
	Any   bool   `json:"any"`
	Etags []Etag `json:"etags,omitempty"`
}

// ParseIfNoneMatch parses the If-None-Match header value.
func ParseIfNoneMatch(s string) (IfNoneMatch, error) {
	anyTag, etags, err := parseEtagList(s)
	if err != nil {
		return IfNoneMatch{}, errtrace.Wrap(err)
	}
	return IfNoneMatch{Any: anyTag, Etags: etags}, nil
}

// Matches reports whether the header selects etag.
// The wildcard selects everything, otherwise the tags are compared structurally.
func (hdr IfNoneMatch) Matches(etag Etag) bool {
	return hdr.Any || slices.Contains(hdr.Etags, etag)
}

// Equal compares this header with another for equality.
func (hdr IfNoneMatch) Equal(val any) bool {
	var other IfNoneMatch
	switch v := val.(type) {
	case IfNoneMatch:
		other = v
	case *IfNoneMatch:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.Any == other.Any && slices.Equal(hdr.Etags, other.Etags)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hdr *IfNoneMatch) UnmarshalText(text []byte) error {
	v, err := ParseIfNoneMatch(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = v
	return nil
}

func parseEtagList(s string) (bool, []Etag, error) {
	if s == "*" {
		return true, nil, nil
	}

	var etags []Etag
	for seg := range grammar.NewSpan(s).Split(',') {
		// only the single space of a ", " separator is dropped
		if rest, err := seg.StripPrefix(" "); err == nil {
			seg = rest
		}

		etag, err := grammar.Parse(seg, ParseEtag)
		if err != nil {
			return false, nil, errtrace.Wrap(err)
		}
		etags = append(etags, etag)
	}
	return false, etags, nil
}
