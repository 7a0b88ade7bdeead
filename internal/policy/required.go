package policy

import (
	"errors"
	"fmt"

	"httpcore/header"
)

var ErrMissingHeader = errors.New("missing required header")

type Required struct {
	names []header.Name
}

func NewRequired(names ...header.Name) *Required {
	return &Required{names: names}
}

func (r *Required) Apply(h Headers) error {
	var errs []error
	for _, n := range r.names {
		if !h.ContainsKey(n) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingHeader, n))
		}
	}
	return errors.Join(errs...)
}
