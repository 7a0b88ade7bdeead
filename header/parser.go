package header

import (
	"bufio"
	"bytes"
	"fmt"
)

var crlf = []byte("\r\n")

// ParseBlock parses "name: value" lines separated by CRLF into a Map. Parsing
// stops at the first empty line or at the end of data. Optional whitespace
// around the value is trimmed.
func ParseBlock(data []byte) (*Map, error) {
	m := NewMap()
	line := 0
	for len(data) > 0 {
		line++
		lineEnd := bytes.Index(data, crlf)
		if lineEnd == -1 {
			lineEnd = len(data)
		}

		if lineEnd == 0 {
			break
		}

		if err := appendLine(m, data[:lineEnd], line); err != nil {
			return nil, err
		}

		if lineEnd == len(data) {
			break
		}
		data = data[lineEnd+2:]
	}
	return m, nil
}

// ReadBlock reads header lines from br up to and including the empty line
// that ends the block. Bare LF line endings are accepted.
func ReadBlock(br *bufio.Reader) (*Map, error) {
	m := NewMap()
	for line := 1; ; line++ {
		raw, err := br.ReadSlice('\n')
		if err != nil {
			return nil, err
		}

		raw = bytes.TrimRight(raw, "\r\n")
		if len(raw) == 0 {
			return m, nil
		}

		if err := appendLine(m, raw, line); err != nil {
			return nil, err
		}
	}
}

func appendLine(m *Map, raw []byte, line int) error {
	colonIdx := bytes.IndexByte(raw, ':')
	if colonIdx == -1 {
		return fmt.Errorf("line %d: %w: missing colon", line, ErrMalformedLine)
	}

	name, err := NameFromBytes(raw[:colonIdx])
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	value, err := FromBytes(bytes.Trim(raw[colonIdx+1:], " \t"))
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", line, name, err)
	}
	m.Append(name, value)
	return nil
}

// AppendTo serialises m as "name: value\r\n" lines followed by the empty
// line that ends a header block. Sensitive values are written as is.
func (m *Map) AppendTo(dst []byte) []byte {
	for name, v := range m.All() {
		dst = name.AppendTo(dst)
		dst = append(dst, ':', ' ')
		dst = v.AppendTo(dst)
		dst = append(dst, '\r', '\n')
	}
	return append(dst, '\r', '\n')
}

// Finalize returns the serialised block in a buffer sized up front.
func (m *Map) Finalize() []byte {
	size := 2
	for name, v := range m.All() {
		size += name.Len() + 2 + v.Len() + 2
	}
	return m.AppendTo(make([]byte, 0, size))
}
