// Package types contains the primitive values that header grammars delegate to:
// ports and IP addresses.
package types

//go:generate errtrace -w .
