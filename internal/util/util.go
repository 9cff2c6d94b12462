// Package util provides small helpers shared by the module.
package util

// Must2 returns v or panics with e.
func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
