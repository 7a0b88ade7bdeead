package policy

import (
	"httpcore/header"
)

type Sensitive struct {
	names []header.Name
}

func NewSensitive(names []string) (*Sensitive, error) {
	parsed, err := parseNames(names)
	if err != nil {
		return nil, err
	}
	return &Sensitive{names: parsed}, nil
}

func (s *Sensitive) Apply(h Headers) error {
	for _, n := range s.names {
		h.Update(n, markSensitive)
	}
	return nil
}

func (s *Sensitive) Matches(name header.Name) bool {
	for _, n := range s.names {
		if n.Equal(name) {
			return true
		}
	}
	return false
}

func markSensitive(v *header.Value) { v.SetSensitive(true) }
