// Package invariant holds the checked-build switch shared by the unchecked
// constructors of the value types.
package invariant

import "fmt"

// Check panics with a descriptive message when ok is false and checks are
// enabled. It is a no-op in unchecked builds.
func Check(ok bool, format string, args ...any) {
	if Enabled && !ok {
		panic(fmt.Sprintf(format, args...))
	}
}
