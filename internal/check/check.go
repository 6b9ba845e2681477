// Package check holds the assertions guarding the unchecked fast paths.
//
// The assertions compile to nothing unless the module is built with the
// hwydebug tag:
//
//	go test -tags hwydebug ./...
//
// Tests that exercise the assertions of a package live in files carrying
// the same tag, so the default build never runs them.
package check

import "fmt"

// Assert panics with the formatted message when cond is false and
// assertions are enabled. Callers on hot paths should guard the call with
// Enabled so the arguments are not evaluated in release builds.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
