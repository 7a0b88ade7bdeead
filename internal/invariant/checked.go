//go:build !httpunchecked

package invariant

// Enabled reports whether unchecked constructors re-validate their input and
// panic on a broken caller contract. Build with -tags httpunchecked to turn
// the checks off.
const Enabled = true
