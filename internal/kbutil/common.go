// Package kbutil collects the small error-handling and I/O helpers shared
// across the CLI and config-loading layers.
package kbutil

import (
	"fmt"
	"io"
	"log"
)

// Must unwraps val if err is nil, and panics otherwise. Useful for call
// sites where an error is a programmer/config error rather than something
// the caller can recover from.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Must0 panics if err is non-nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// MustFprintf writes a formatted string to w, logging and exiting on error.
func MustFprintf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Fatalf("Fprintf failed: %v", err)
	}
}

// MustFprintln writes args, newline-terminated, to w, logging and exiting on error.
func MustFprintln(w io.Writer, args ...any) {
	if _, err := fmt.Fprintln(w, args...); err != nil {
		log.Fatalf("Fprintln failed: %v", err)
	}
}

// CloseQuietly closes c and logs any error instead of returning it, for use
// in defer statements where the close error is not actionable.
func CloseQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("close failed: %v", err)
	}
}
