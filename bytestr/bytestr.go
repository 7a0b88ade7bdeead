// Package bytestr provides Str, an immutable string that is known to hold
// valid UTF-8.
//
// Validity is proven once, at construction, so reading a Str never needs to
// scan it again. Copies of a Str share the same backing memory.
package bytestr

import (
	"errors"
	"fmt"
	"hash/maphash"
	"strings"
	"unicode/utf8"

	"httpcore/internal/bytesconv"
	"httpcore/internal/invariant"
)

var ErrInvalidUTF8 = errors.New("bytestr: invalid utf-8")

// Str holds valid UTF-8. The zero value is the empty string.
type Str struct {
	s string
}

// New returns an empty Str.
func New() Str {
	return Str{}
}

// FromStatic wraps a string literal and panics if it is not valid UTF-8.
// Escapes such as "\xff" can produce invalid literals. Intended for
// package-level values.
func FromStatic(s string) Str {
	if !utf8.ValidString(s) {
		panic(fmt.Sprintf("bytestr: FromStatic with invalid utf-8 %q", s))
	}
	return Str{s: s}
}

// FromString wraps s after checking it. Strings are immutable, so no copy is made.
func FromString(s string) (Str, error) {
	if i := invalidAt(bytesconv.S2B(s)); i >= 0 {
		return Str{}, fmt.Errorf("%w at offset %d", ErrInvalidUTF8, i)
	}
	return Str{s: s}, nil
}

// FromUTF8 takes ownership of b after checking it holds valid UTF-8. The
// caller must not modify b after the call.
func FromUTF8(b []byte) (Str, error) {
	if i := invalidAt(b); i >= 0 {
		return Str{}, fmt.Errorf("%w at offset %d", ErrInvalidUTF8, i)
	}
	return Str{s: bytesconv.B2S(b)}, nil
}

// FromUTF8Unchecked takes ownership of b without scanning it. The caller
// promises b is valid UTF-8. Checked builds still scan and panic when the
// promise is broken.
func FromUTF8Unchecked(b []byte) Str {
	if invariant.Enabled {
		if i := invalidAt(b); i >= 0 {
			panic(fmt.Sprintf("bytestr.FromUTF8Unchecked with invalid bytes; error = invalid utf-8 at offset %d, bytes = %q", i, b))
		}
	}
	return Str{s: bytesconv.B2S(b)}
}

// Copy returns a Str holding a private copy of s's bytes. Use it when s is a
// view into a larger buffer that should not be kept alive.
func Copy(s string) (Str, error) {
	out, err := FromString(s)
	if err != nil {
		return Str{}, err
	}
	return Str{s: strings.Clone(out.s)}, nil
}

func (b Str) String() string { return b.s }
func (b Str) Len() int       { return len(b.s) }
func (b Str) IsEmpty() bool  { return len(b.s) == 0 }

// Bytes returns a copy of the contents.
func (b Str) Bytes() []byte {
	return []byte(b.s)
}

// AppendTo appends the contents to dst.
func (b Str) AppendTo(dst []byte) []byte {
	return append(dst, b.s...)
}

func (b Str) Equal(o Str) bool {
	return b.s == o.s
}

// Compare orders byte-wise.
func (b Str) Compare(o Str) int {
	return strings.Compare(b.s, o.s)
}

func (b Str) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, b.s)
}

func invalidAt(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
