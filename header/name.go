package header

import (
	"fmt"

	"httpcore/bytestr"
	"httpcore/internal/bytesconv"
)

// Name is an HTTP header field name. Names are case-insensitive on the wire;
// a Name always holds the lower-case form.
type Name struct {
	s bytestr.Str
}

// NameFromBytes validates src as a token, folding upper-case ASCII letters
// to lower case. src is not retained.
func NameFromBytes(src []byte) (Name, error) {
	if len(src) == 0 {
		return Name{}, fmt.Errorf("%w: empty name", ErrInvalidHeaderName)
	}
	buf := make([]byte, len(src))
	for i, b := range src {
		c := nameChars[b]
		if c == 0 {
			return Name{}, invalidName(b, i)
		}
		buf[i] = c
	}
	// nameChars only yields ASCII, which is valid UTF-8.
	return Name{s: bytestr.FromUTF8Unchecked(buf)}, nil
}

// ParseName is like NameFromBytes. A name that is already lower case is
// shared instead of copied.
func ParseName(s string) (Name, error) {
	if len(s) == 0 {
		return Name{}, fmt.Errorf("%w: empty name", ErrInvalidHeaderName)
	}
	for i := 0; i < len(s); i++ {
		c := nameChars[s[i]]
		if c == 0 {
			return Name{}, invalidName(s[i], i)
		}
		if c != s[i] {
			return NameFromBytes(bytesconv.S2B(s))
		}
	}
	return Name{s: bytestr.FromUTF8Unchecked(bytesconv.S2B(s))}, nil
}

// NameFromStatic converts a lower-case literal and panics on anything else.
func NameFromStatic(s string) Name {
	for i := 0; i < len(s); i++ {
		if nameChars[s[i]] != s[i] {
			panic(fmt.Sprintf("header: NameFromStatic(%q): invalid or upper-case byte 0x%02x at offset %d", s, s[i], i))
		}
	}
	if s == "" {
		panic("header: NameFromStatic with empty name")
	}
	return Name{s: bytestr.FromStatic(s)}
}

func (n Name) String() string     { return n.s.String() }
func (n Name) Len() int           { return n.s.Len() }
func (n Name) IsZero() bool       { return n.s.IsEmpty() }
func (n Name) Equal(o Name) bool  { return n.s.Equal(o.s) }
func (n Name) Compare(o Name) int { return n.s.Compare(o.s) }

// AppendTo appends the name to dst.
func (n Name) AppendTo(dst []byte) []byte {
	return n.s.AppendTo(dst)
}

// ByteStr returns the name as a bytestr.Str without copying.
func (n Name) ByteStr() bytestr.Str {
	return n.s
}

func invalidName(b byte, i int) error {
	return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidHeaderName, b, i)
}

// nameChars maps every tchar to its lower-case form and every other byte to 0.
var nameChars = func() (t [256]byte) {
	const tchars = "!#$%&'*+-.^_`|~0123456789abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < len(tchars); i++ {
		t[tchars[i]] = tchars[i]
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = c + ('a' - 'A')
	}
	return t
}()
