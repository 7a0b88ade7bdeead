package lint

import (
	"fmt"

	"httpcore/status"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

type Finding struct {
	Source   string
	Line     int
	Subject  string
	Severity Severity
	Message  string

	// Status is set on findings about a status code or status line.
	Status status.Code
}

func (f Finding) Location() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.Source, f.Line)
	}
	return f.Source
}

type Report []Finding

func (r Report) HasErrors() bool {
	for _, f := range r {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r {
		if f.Severity == s {
			n++
		}
	}
	return n
}
