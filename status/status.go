// Package status implements HTTP response status codes.
//
// A Code is always in [100, 999]. Codes of 600 and above are accepted for
// compatibility with legacy peers but belong to none of the five classes.
package status

import (
	"errors"
	"fmt"
	"strconv"

	"httpcore/internal/bytesconv"
	"httpcore/internal/invariant"
)

var ErrInvalidStatusCode = errors.New("invalid status code")

// Code is a validated status code. The zero value is not a valid code and
// stands for "no status"; no constructor ever returns it without an error.
type Code struct {
	n uint16
}

// FromUint16 returns the code for n, which must be in [100, 999].
func FromUint16(n uint16) (Code, error) {
	if n < 100 || n >= 1000 {
		return Code{}, fmt.Errorf("%w: %d out of range [100, 999]", ErrInvalidStatusCode, n)
	}
	return Code{n: n}, nil
}

// FromBytes parses exactly three ASCII digits with a non-zero leading digit.
// Signs, spaces and leading zeros are rejected.
func FromBytes(src []byte) (Code, error) {
	return parse(bytesconv.B2S(src))
}

func Parse(s string) (Code, error) {
	return parse(s)
}

// MustFromUint16 is like FromUint16 but panics when n is out of range.
func MustFromUint16(n uint16) Code {
	c, err := FromUint16(n)
	if err != nil {
		panic(fmt.Sprintf("status: MustFromUint16(%d): %v", n, err))
	}
	return c
}

func parse(s string) (Code, error) {
	if len(s) != 3 {
		return Code{}, fmt.Errorf("%w: %q is not three digits", ErrInvalidStatusCode, s)
	}

	a := uint16(s[0] - '0')
	b := uint16(s[1] - '0')
	c := uint16(s[2] - '0')

	if a == 0 || a > 9 || b > 9 || c > 9 {
		return Code{}, fmt.Errorf("%w: %q is not three digits", ErrInvalidStatusCode, s)
	}
	return Code{n: a*100 + b*10 + c}, nil
}

func (c Code) Uint16() uint16 { return c.n }
func (c Code) Int() int       { return int(c.n) }

// IsZero reports whether c is the absent code.
func (c Code) IsZero() bool { return c.n == 0 }

// Text returns the three digit form, e.g. "404", without the reason phrase.
// It panics on the zero Code.
func (c Code) Text() string {
	invariant.Check(c.n >= 100 && c.n < 1000, "status: Text on out of range code %d", c.n)
	off := int(c.n-100) * 3
	return codeDigits[off : off+3]
}

// AppendTo appends the three digit form to dst.
func (c Code) AppendTo(dst []byte) []byte {
	return append(dst, c.Text()...)
}

// CanonicalReason returns the registered reason phrase for c. The phrase is
// for human readers only; never derive protocol behaviour from it.
func (c Code) CanonicalReason() (string, bool) {
	r := canonicalReasons[c.n%1000]
	return r, r != ""
}

func (c Code) IsInformational() bool { return c.n >= 100 && c.n < 200 }
func (c Code) IsSuccess() bool       { return c.n >= 200 && c.n < 300 }
func (c Code) IsRedirection() bool   { return c.n >= 300 && c.n < 400 }
func (c Code) IsClientError() bool   { return c.n >= 400 && c.n < 500 }
func (c Code) IsServerError() bool   { return c.n >= 500 && c.n < 600 }

// String formats the code with its reason phrase, e.g. "200 OK".
func (c Code) String() string {
	if c.n == 0 {
		return "<no status code>"
	}
	reason, ok := c.CanonicalReason()
	if !ok {
		reason = "<unknown status code>"
	}
	return strconv.Itoa(int(c.n)) + " " + reason
}

func (c Code) GoString() string {
	return strconv.Itoa(int(c.n))
}

func (c Code) Compare(o Code) int {
	switch {
	case c.n < o.n:
		return -1
	case c.n > o.n:
		return 1
	}
	return 0
}

// EqualUint16 reports whether c holds the numeric value n.
func (c Code) EqualUint16(n uint16) bool {
	return c.n == n
}
