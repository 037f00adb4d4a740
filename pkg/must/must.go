// Package must contains simple functions that panic on errors. It should only
// be used in tests and rare places where errors are provably impossible.
package must

import (
	"os"
)

// OK panics if the error value is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil, and returns the other value
// otherwise.
func OK1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// OK2 panics if the error value is not nil, and returns the other two values
// otherwise.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	if err != nil {
		panic(err)
	}
	return v1, v2
}

// Pipe wraps os.Pipe.
func Pipe() (*os.File, *os.File) {
	return OK2(os.Pipe())
}

// ReadFile wraps os.ReadFile.
func ReadFile(name string) []byte {
	return OK1(os.ReadFile(name))
}
