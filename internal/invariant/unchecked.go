//go:build httpunchecked

package invariant

const Enabled = false
