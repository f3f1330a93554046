//go:build debug

package debug

// Enabled reports whether assertions are compiled in. Guard assertions with
// side effects or costly arguments with `if debug.Enabled {...}`.
const Enabled = true

// Assert panics with message if b is false.
func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}
