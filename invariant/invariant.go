//go:build !noinvariant

package invariant

import (
	"fmt"
	"runtime"
)

// Enabled reports whether checks are compiled in.
const Enabled = true

func callerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// Check panics with descriptive information if result is false.
func Check(label string, result bool) {
	if !result {
		panic(fmt.Sprintf("invariant '%s' violated at %s", label, callerDetails()))
	}
}

// CheckFunc panics with descriptive information if check returns false.
// Use this when evaluating the condition isn't free, since check is never called when built with 'noinvariant'.
func CheckFunc(label string, check func() bool) {
	if !check() {
		panic(fmt.Sprintf("invariant '%s' violated at %s", label, callerDetails()))
	}
}
