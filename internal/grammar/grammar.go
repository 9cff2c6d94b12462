// Package grammar implements the slicing primitives the header grammars are built from.
//
// A [Span] is a read-only view over the caller's string. Every operation returns new spans
// over the same backing text, so parsing allocates only where a grammar explicitly asks for an
// owned copy. [Cursor] is the single stateful view: [Cursor.SplitOff] consumes its input.
package grammar

//go:generate errtrace -w .

import "fmt"

// Error is returned when the input does not have the expected shape.
//
// Pos is the byte offset of the failure. Current grammars always report 0.
type Error struct {
	Pos      int
	Expected string
}

func (e Error) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected input at position %d", e.Pos)
	}
	return fmt.Sprintf("expected %s at position %d", e.Expected, e.Pos)
}

// Grammar marks the error as a grammar error, see errorutil.IsGrammarErr.
func (Error) Grammar() bool { return true }

// Expect returns an [Error] at position 0 with the given static description.
func Expect(what string) Error { return Error{Expected: what} }

// Parser converts a string to a value of type T.
type Parser[T any] func(s string) (T, error)
