package policy

import (
	"errors"

	"httpcore/header"
)

type Headers interface {
	ContainsKey(name header.Name) bool
	Update(name header.Name, fn func(*header.Value))
}

type HeaderPolicy interface {
	Apply(h Headers) error
}

type Chain []HeaderPolicy

// Apply runs every policy and joins their errors.
func (c Chain) Apply(h Headers) error {
	var errs []error
	for _, p := range c {
		if err := p.Apply(h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func parseNames(raw []string) ([]header.Name, error) {
	names := make([]header.Name, 0, len(raw))
	for _, r := range raw {
		n, err := header.ParseName(r)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}
