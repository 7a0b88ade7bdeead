// Package random draws strings from the alphabets of the HTTP value types.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
	ErrInvalidBound  = fmt.Errorf("invalid bound")
)

const (
	lowerCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	tokenCharset = "!#$%&'*+-.^_`|~0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

type Random interface {
	String(length int) (string, error)
	Token(length int) (string, error)
	Value(length int) ([]byte, error)
	Intn(n int) (int, error)
}

type random struct {
	reader io.Reader
}

// New draws from crypto/rand.
func New() Random {
	return &random{reader: rand.Reader}
}

// NewSeeded draws from a deterministic ChaCha8 stream so a failing sequence
// can be replayed from its seed.
func NewSeeded(seed [32]byte) Random {
	return &random{reader: mrand.NewChaCha8(seed)}
}

// String returns lower-case letters and digits.
func (ran *random) String(length int) (string, error) {
	b, err := ran.pick(length, lowerCharset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Token returns RFC 9110 tchar characters.
func (ran *random) Token(length int) (string, error) {
	b, err := ran.pick(length, tokenCharset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Value returns bytes from the header value set: tab, 0x20-0x7e and the
// opaque octets 0x80-0xff.
func (ran *random) Value(length int) ([]byte, error) {
	if length < 0 {
		return nil, ErrInvalidLength
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return nil, err
	}
	for i, c := range b {
		switch {
		case c == 0x7f:
			b[i] = '\t'
		case c < 0x20:
			b[i] = c + 0x20
		}
	}
	return b, nil
}

// Intn returns a number in [0, n).
func (ran *random) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	var buf [8]byte
	if _, err := io.ReadFull(ran.reader, buf[:]); err != nil {
		return 0, err
	}
	return int(binary.LittleEndian.Uint64(buf[:]) % uint64(n)), nil
}

func (ran *random) pick(length int, charset string) ([]byte, error) {
	if length < 0 {
		return nil, ErrInvalidLength
	}
	b := make([]byte, length)

	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return nil, err
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return b, nil
}
