//go:build !hwydebug

package check

// Enabled reports whether unchecked-path assertions are compiled in.
const Enabled = false
