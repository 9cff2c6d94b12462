package grammar

import (
	"iter"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
)

// Span is an immutable view over a borrowed string.
type Span struct {
	s string
}

// NewSpan wraps s.
func NewSpan(s string) Span { return Span{s} }

// String returns the text covered by the span.
func (sp Span) String() string { return sp.s }

// Len returns the span length in bytes.
func (sp Span) Len() int { return len(sp.s) }

// IsEmpty reports whether the span covers no text.
func (sp Span) IsEmpty() bool { return len(sp.s) == 0 }

// Enclosed returns the interior of the span when it starts and ends with delim.
// The span must be at least two delimiters wide, so a lone delimiter is rejected.
func (sp Span) Enclosed(delim rune) (Span, error) {
	n := utf8.RuneLen(delim)
	if n > 0 && len(sp.s) >= 2*n {
		first, _ := utf8.DecodeRuneInString(sp.s)
		last, _ := utf8.DecodeLastRuneInString(sp.s)
		if first == delim && last == delim {
			return Span{sp.s[n : len(sp.s)-n]}, nil
		}
	}
	return Span{}, errtrace.Wrap(Expect(string(delim)))
}

// FindEnclosed locates the first delim...delim region, delimiters included.
// It reports false when there is no opening delimiter, when the opening delimiter
// is the last character, or when no closing delimiter follows it.
func (sp Span) FindEnclosed(delim rune) (Span, bool) {
	n := utf8.RuneLen(delim)
	if n < 0 {
		return Span{}, false
	}
	start := strings.IndexRune(sp.s, delim)
	if start < 0 || start+n >= len(sp.s) {
		return Span{}, false
	}
	end := strings.IndexRune(sp.s[start+n:], delim)
	if end < 0 {
		return Span{}, false
	}
	return Span{sp.s[start : start+n+end+n]}, true
}

// SplitOnce splits the span around the first delim.
// If delim is absent it returns the whole span, an empty span and false.
func (sp Span) SplitOnce(delim rune) (before, after Span, found bool) {
	i := strings.IndexRune(sp.s, delim)
	if i < 0 {
		return sp, Span{}, false
	}
	return Span{sp.s[:i]}, Span{sp.s[i+utf8.RuneLen(delim):]}, true
}

// StripPrefix returns the remainder after the literal prefix lit.
func (sp Span) StripPrefix(lit string) (Span, error) {
	rest, ok := strings.CutPrefix(sp.s, lit)
	if !ok {
		return Span{}, errtrace.Wrap(Expect(lit))
	}
	return Span{rest}, nil
}

// TrimLeft drops all leading characters contained in cutset.
func (sp Span) TrimLeft(cutset string) Span { return Span{strings.TrimLeft(sp.s, cutset)} }

// Split yields the pieces of the span separated by delim, in order.
// An empty span yields a single empty piece.
func (sp Span) Split(delim rune) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		rest := sp
		for {
			head, tail, ok := rest.SplitOnce(delim)
			if !yield(head) || !ok {
				return
			}
			rest = tail
		}
	}
}

// Parse converts the span text with prs. The error is the one returned by prs.
func Parse[T any](sp Span, prs Parser[T]) (T, error) {
	return errtrace.Wrap2(prs(sp.s))
}
