package header

import (
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"

	"httpcore/bytestr"
	"httpcore/internal/bytesconv"
	"httpcore/internal/invariant"
	"httpcore/method"
)

// Value is an HTTP header field value.
//
// Header values are usually visible ASCII, but the protocol also allows
// opaque octets (128-255). Such values are valid yet cannot be turned into
// text, so ToStr can fail on a Value that was constructed successfully.
//
// Values are not comparable with ==; use Equal, which ignores the
// sensitivity flag.
type Value struct {
	_         [0]func()
	s         string
	sensitive bool
}

// Shared is any source that FromMaybeShared can adopt.
type Shared interface {
	~string | ~[]byte
}

// FromStatic converts a literal, panicking if it holds a byte outside the
// header value set. Declare static values at package level so a bad literal
// aborts the program at start instead of producing a malformed value.
func FromStatic(s string) Value {
	if i := invalidValueAt(s); i >= 0 {
		panic(fmt.Sprintf("header: FromStatic(%q): invalid header value byte 0x%02x at offset %d", s, s[i], i))
	}
	return Value{s: s}
}

// FromString validates s. Strings are immutable so s is shared, not copied.
func FromString(s string) (Value, error) {
	if i := invalidValueAt(s); i >= 0 {
		return Value{}, invalidValue(s[i], i)
	}
	return Value{s: s}, nil
}

// FromBytes validates src and copies it into a new Value.
func FromBytes(src []byte) (Value, error) {
	if i := invalidValueAt(bytesconv.B2S(src)); i >= 0 {
		return Value{}, invalidValue(src[i], i)
	}
	return Value{s: string(src)}, nil
}

// FromMaybeShared validates src and adopts it without copying when it is
// already string backed. Byte slices take the FromBytes copy path.
func FromMaybeShared[T Shared](src T) (Value, error) {
	for i := 0; i < len(src); i++ {
		if !isValid(src[i]) {
			return Value{}, invalidValue(src[i], i)
		}
	}
	// Free for string kinds, a copy for byte slices.
	return Value{s: string(src)}, nil
}

// FromMaybeSharedUnchecked adopts src without validating it. The caller
// promises every byte is a valid header value byte. Checked builds still
// validate and panic when the promise is broken.
func FromMaybeSharedUnchecked[T Shared](src T) Value {
	if invariant.Enabled {
		v, err := FromMaybeShared(src)
		if err != nil {
			panic(fmt.Sprintf("header.FromMaybeSharedUnchecked with invalid bytes; error = %v, bytes = %q", err, src))
		}
		return v
	}
	return Value{s: string(src)}
}

// FromName converts a header name. Name characters are a subset of value
// characters, so this cannot fail.
func FromName(n Name) Value {
	return Value{s: n.String()}
}

// FromMethod converts a request method. Token characters are a subset of
// value characters, so this cannot fail.
func FromMethod(m method.Method) Value {
	return Value{s: m.String()}
}

// FromByteStr validates a UTF-8 string. It fails on control characters;
// multi-byte runes are accepted as opaque octets.
func FromByteStr(b bytestr.Str) (Value, error) {
	return FromString(b.String())
}

// Maximum decimal widths per integer type, sign included.
const (
	uint16Width = 5
	int16Width  = 6
	uint32Width = 10
	int32Width  = 11
	uint64Width = 20
	int64Width  = 20

	uintWidth = 5 << (strconv.IntSize / 32) // 10 on 32-bit, 20 on 64-bit
	intWidth  = 11 + 9*(strconv.IntSize/64) // 11 on 32-bit, 20 on 64-bit
)

// There is purposely no FromUint8: FromUint8('3') would read as a byte, not "51".

func FromUint16(n uint16) Value { return fromUnsigned(uint64(n), uint16Width) }
func FromInt16(n int16) Value   { return fromSigned(int64(n), int16Width) }
func FromUint32(n uint32) Value { return fromUnsigned(uint64(n), uint32Width) }
func FromInt32(n int32) Value   { return fromSigned(int64(n), int32Width) }
func FromUint64(n uint64) Value { return fromUnsigned(n, uint64Width) }
func FromInt64(n int64) Value   { return fromSigned(n, int64Width) }
func FromUint(n uint) Value     { return fromUnsigned(uint64(n), uintWidth) }
func FromInt(n int) Value       { return fromSigned(int64(n), intWidth) }

func fromUnsigned(n uint64, width int) Value {
	buf := strconv.AppendUint(make([]byte, 0, width), n, 10)
	return Value{s: bytesconv.B2S(buf)}
}

func fromSigned(n int64, width int) Value {
	buf := strconv.AppendInt(make([]byte, 0, width), n, 10)
	return Value{s: bytesconv.B2S(buf)}
}

// ToStr returns the value as text if every byte is visible ASCII or tab.
func (v Value) ToStr() (string, error) {
	for i := 0; i < len(v.s); i++ {
		if !isVisibleASCII(v.s[i]) {
			return "", fmt.Errorf("%w: byte 0x%02x at offset %d", ErrToStr, v.s[i], i)
		}
	}
	return v.s, nil
}

func (v Value) Len() int      { return len(v.s) }
func (v Value) IsEmpty() bool { return len(v.s) == 0 }

// Bytes returns a copy of the raw value.
func (v Value) Bytes() []byte {
	return []byte(v.s)
}

// AppendTo appends the raw value to dst.
func (v Value) AppendTo(dst []byte) []byte {
	return append(dst, v.s...)
}

// SetSensitive marks the value as holding secret data. The flag only
// affects String; it takes no part in comparisons or hashing.
func (v *Value) SetSensitive(sensitive bool) {
	v.sensitive = sensitive
}

func (v Value) IsSensitive() bool {
	return v.sensitive
}

// WithSensitive returns a copy of v with the flag set.
func (v Value) WithSensitive(sensitive bool) Value {
	v.sensitive = sensitive
	return v
}

// String returns the debug rendering of v: "Sensitive" for sensitive
// values, otherwise the bytes in double quotes with '"' escaped as \" and
// every byte outside visible ASCII escaped as \xHH. It is safe to log.
func (v Value) String() string {
	if v.sensitive {
		return "Sensitive"
	}

	var sb strings.Builder
	sb.Grow(len(v.s) + 2)
	sb.WriteByte('"')
	from := 0
	for i := 0; i < len(v.s); i++ {
		b := v.s[i]
		if isVisibleASCII(b) && b != '"' {
			continue
		}
		sb.WriteString(v.s[from:i])
		if b == '"' {
			sb.WriteString(`\"`)
		} else {
			sb.WriteString(`\x`)
			sb.WriteString(strconv.FormatUint(uint64(b), 16))
		}
		from = i + 1
	}
	sb.WriteString(v.s[from:])
	sb.WriteByte('"')
	return sb.String()
}

func (v Value) GoString() string {
	return v.String()
}

func (v Value) Equal(o Value) bool         { return v.s == o.s }
func (v Value) EqualString(s string) bool  { return v.s == s }
func (v Value) EqualBytes(b []byte) bool   { return v.s == string(b) }
func (v Value) Compare(o Value) int        { return strings.Compare(v.s, o.s) }
func (v Value) CompareString(s string) int { return strings.Compare(v.s, s) }
func (v Value) CompareBytes(b []byte) int  { return strings.Compare(v.s, bytesconv.B2S(b)) }

// Hash hashes the bytes of v; the sensitivity flag is ignored.
func (v Value) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, v.s)
}

func invalidValueAt(s string) int {
	for i := 0; i < len(s); i++ {
		if !isValid(s[i]) {
			return i
		}
	}
	return -1
}

func invalidValue(b byte, i int) error {
	return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidHeaderValue, b, i)
}

func isVisibleASCII(b byte) bool {
	return b >= 32 && b < 127 || b == '\t'
}

func isValid(b byte) bool {
	return b >= 32 && b != 127 || b == '\t'
}
