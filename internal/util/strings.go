package util

import (
	"strings"
	"sync"
)

// TrimSP trims leading and trailing white space.
func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

// Ellipsis cuts s to maxLen runes and marks the cut with "...".
func Ellipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
