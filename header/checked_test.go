//go:build !httpunchecked

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMaybeSharedUncheckedPanicsOnBrokenPromise(t *testing.T) {
	assert.PanicsWithValue(t,
		`header.FromMaybeSharedUnchecked with invalid bytes; error = failed to parse header value: byte 0x0d at offset 3, bytes = "bad\r\n"`,
		func() { FromMaybeSharedUnchecked("bad\r\n") })
	assert.PanicsWithValue(t,
		`header.FromMaybeSharedUnchecked with invalid bytes; error = failed to parse header value: byte 0x7f at offset 0, bytes = "\x7f"`,
		func() { FromMaybeSharedUnchecked([]byte{0x7f}) })
}
