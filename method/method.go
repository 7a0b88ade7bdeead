// Package method implements the HTTP request method token (RFC 9110 §9.1).
//
//	method = token
//	token  = 1*tchar
//	tchar  = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	         "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//
// Methods are case-sensitive. The nine standard verbs are recognised by a
// length-then-bytes dispatch and carry no payload. Other tokens are stored
// inline when they fit in InlineCap bytes and in an exactly sized string
// otherwise.
package method

import (
	"errors"
	"fmt"
	"strings"

	"httpcore/internal/bytesconv"
)

var ErrInvalidMethod = errors.New("invalid HTTP method")

// InlineCap is the longest extension token stored without allocation.
// FromBytes relies on it being at least 7, the length of the longest
// standard verb.
const InlineCap = 15

// Fails to compile if InlineCap drops below the longest standard verb.
const _ = uint(InlineCap - len("OPTIONS"))

type kind uint8

const (
	kindGet kind = iota
	kindPost
	kindPut
	kindDelete
	kindHead
	kindOptions
	kindConnect
	kindPatch
	kindTrace
	kindInline
	kindAllocated
)

var standardNames = [...]string{
	kindGet:     "GET",
	kindPost:    "POST",
	kindPut:     "PUT",
	kindDelete:  "DELETE",
	kindHead:    "HEAD",
	kindOptions: "OPTIONS",
	kindConnect: "CONNECT",
	kindPatch:   "PATCH",
	kindTrace:   "TRACE",
}

// Method is a validated request method. The zero value is GET. Methods are
// comparable with ==: two methods built from the same bytes always share a
// representation.
type Method struct {
	kind kind
	n    uint8
	// inline holds the first n bytes of a kindInline token.
	inline [InlineCap]byte
	// ext holds a kindAllocated token.
	ext string
}

var (
	Get     = Method{kind: kindGet}
	Post    = Method{kind: kindPost}
	Put     = Method{kind: kindPut}
	Delete  = Method{kind: kindDelete}
	Head    = Method{kind: kindHead}
	Options = Method{kind: kindOptions}
	Connect = Method{kind: kindConnect}
	Patch   = Method{kind: kindPatch}
	Trace   = Method{kind: kindTrace}
)

// FromBytes validates src and returns the method it names. src is not retained.
func FromBytes(src []byte) (Method, error) {
	return parse(bytesconv.B2S(src))
}

// Parse validates s and returns the method it names. Long extension tokens
// are copied into an exactly sized buffer, so s is not retained either.
func Parse(s string) (Method, error) {
	return parse(s)
}

// MustParse is like Parse but panics on an invalid token. It is meant for
// package-level variables, so a bad literal stops the program at start.
func MustParse(s string) Method {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("method: MustParse(%q): %v", s, err))
	}
	return m
}

func parse(src string) (Method, error) {
	switch len(src) {
	case 0:
		return Method{}, fmt.Errorf("%w: empty token", ErrInvalidMethod)
	case 3:
		switch src {
		case "GET":
			return Get, nil
		case "PUT":
			return Put, nil
		}
	case 4:
		switch src {
		case "POST":
			return Post, nil
		case "HEAD":
			return Head, nil
		}
	case 5:
		switch src {
		case "PATCH":
			return Patch, nil
		case "TRACE":
			return Trace, nil
		}
	case 6:
		if src == "DELETE" {
			return Delete, nil
		}
	case 7:
		switch src {
		case "OPTIONS":
			return Options, nil
		case "CONNECT":
			return Connect, nil
		}
	}

	if len(src) <= InlineCap {
		return inlineExtension(src)
	}
	return allocatedExtension(src)
}

func inlineExtension(src string) (Method, error) {
	m := Method{kind: kindInline, n: uint8(len(src))}
	if err := writeChecked(src, m.inline[:]); err != nil {
		return Method{}, err
	}
	return m, nil
}

func allocatedExtension(src string) (Method, error) {
	if i := invalidAt(src); i >= 0 {
		return Method{}, invalidByte(src[i], i)
	}
	// src may alias a caller's slice or a larger string.
	return Method{kind: kindAllocated, ext: strings.Clone(src)}, nil
}

// writeChecked copies src into dst through the token table, failing on the
// first byte that is not a tchar.
func writeChecked(src string, dst []byte) error {
	for i := 0; i < len(src); i++ {
		b := methodChars[src[i]]
		if b == 0 {
			return invalidByte(src[i], i)
		}
		dst[i] = b
	}
	return nil
}

func invalidAt(src string) int {
	for i := 0; i < len(src); i++ {
		if methodChars[src[i]] == 0 {
			return i
		}
	}
	return -1
}

func invalidByte(b byte, i int) error {
	return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidMethod, b, i)
}

// String returns the method token. Standard and long methods are returned
// without allocating; inline extensions are copied out of their array.
func (m Method) String() string {
	switch m.kind {
	case kindInline:
		return string(m.inline[:m.n])
	case kindAllocated:
		return m.ext
	default:
		return standardNames[m.kind]
	}
}

// AppendTo appends the token to dst without an intermediate string.
func (m Method) AppendTo(dst []byte) []byte {
	if m.kind == kindInline {
		return append(dst, m.inline[:m.n]...)
	}
	return append(dst, m.String()...)
}

func (m Method) Len() int {
	switch m.kind {
	case kindInline:
		return int(m.n)
	case kindAllocated:
		return len(m.ext)
	default:
		return len(standardNames[m.kind])
	}
}

func (m Method) Equal(o Method) bool {
	return m == o
}

// EqualString reports whether the token equals s. It never allocates.
func (m Method) EqualString(s string) bool {
	if m.kind == kindInline {
		return string(m.inline[:m.n]) == s
	}
	return m.String() == s
}

// Compare orders methods by their token bytes.
func (m Method) Compare(o Method) int {
	return strings.Compare(m.String(), o.String())
}

// IsSafe reports whether the method is read-only (RFC 9110 §9.2.1).
func (m Method) IsSafe() bool {
	switch m.kind {
	case kindGet, kindHead, kindOptions, kindTrace:
		return true
	}
	return false
}

// IsIdempotent reports whether repeating the request has the same effect as
// sending it once (RFC 9110 §9.2.2).
func (m Method) IsIdempotent() bool {
	switch m.kind {
	case kindPut, kindDelete:
		return true
	}
	return m.IsSafe()
}

// IsStandard reports whether m is one of the nine predefined verbs.
func (m Method) IsStandard() bool {
	return m.kind < kindInline
}

// IsInline reports whether m is an extension token stored without allocation.
func (m Method) IsInline() bool {
	return m.kind == kindInline
}

// IsAllocated reports whether m is an extension token longer than InlineCap.
func (m Method) IsAllocated() bool {
	return m.kind == kindAllocated
}
