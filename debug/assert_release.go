//go:build !debug

// Package debug provides assertions that are checked when building with the
// debug build tag, and compile to no-ops otherwise.
//
// They guard invariants inside the register layer which are impossible to
// violate through the typed API, e.g. a field value exceeding its width.
package debug

// Enabled reports whether assertions are compiled in. Guard assertions with
// side effects or costly arguments with `if debug.Enabled {...}`.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}
