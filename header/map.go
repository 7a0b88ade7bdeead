package header

import (
	"iter"
	"slices"
)

// Map is an ordered multi-valued header collection. Keys keep the order in
// which they were first inserted; values under a key keep append order.
// The zero value is an empty map ready to use.
type Map struct {
	index   map[string]int
	entries []entry
	values  int
}

type entry struct {
	name   Name
	values []Value
}

func NewMap() *Map {
	return &Map{index: make(map[string]int, 16)}
}

// Insert replaces every value under name with v and returns the first value
// previously stored, if any.
func (m *Map) Insert(name Name, v Value) (Value, bool) {
	if i, ok := m.lookup(name); ok {
		e := &m.entries[i]
		prev := e.values[0]
		m.values -= len(e.values) - 1
		e.values = []Value{v}
		return prev, true
	}
	m.push(name, v)
	return Value{}, false
}

// Append adds v after the values already under name. It reports whether
// name was present before the call.
func (m *Map) Append(name Name, v Value) bool {
	if i, ok := m.lookup(name); ok {
		m.entries[i].values = append(m.entries[i].values, v)
		m.values++
		return true
	}
	m.push(name, v)
	return false
}

// Remove deletes name and returns its first value.
func (m *Map) Remove(name Name) (Value, bool) {
	i, ok := m.lookup(name)
	if !ok {
		return Value{}, false
	}
	first := m.entries[i].values[0]
	m.values -= len(m.entries[i].values)
	m.entries = slices.Delete(m.entries, i, i+1)
	delete(m.index, name.String())
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].name.String()] = j
	}
	return first, true
}

// Get returns the first value under name.
func (m *Map) Get(name Name) (Value, bool) {
	if i, ok := m.lookup(name); ok {
		return m.entries[i].values[0], true
	}
	return Value{}, false
}

// GetAll returns a copy of every value under name, in append order.
func (m *Map) GetAll(name Name) []Value {
	if i, ok := m.lookup(name); ok {
		return slices.Clone(m.entries[i].values)
	}
	return nil
}

func (m *Map) ContainsKey(name Name) bool {
	_, ok := m.lookup(name)
	return ok
}

// KeysLen returns the number of distinct names.
func (m *Map) KeysLen() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Len returns the number of values across all names.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.values
}

// All yields every (name, value) pair: keys in first-insertion order, values
// in append order.
func (m *Map) All() iter.Seq2[Name, Value] {
	return func(yield func(Name, Value) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			for _, v := range e.values {
				if !yield(e.name, v) {
					return
				}
			}
		}
	}
}

// Keys yields each distinct name once.
func (m *Map) Keys() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.name) {
				return
			}
		}
	}
}

// Update calls fn on every stored value so it can be changed in place,
// e.g. to flip its sensitivity flag.
func (m *Map) Update(name Name, fn func(*Value)) {
	if i, ok := m.lookup(name); ok {
		for j := range m.entries[i].values {
			fn(&m.entries[i].values[j])
		}
	}
}

// Equal reports whether both maps hold the same values per name. Key order
// is ignored; value order under a key is not. Sensitivity is ignored.
func (m *Map) Equal(o *Map) bool {
	if m.KeysLen() != o.KeysLen() || m.Len() != o.Len() {
		return false
	}
	if m.KeysLen() == 0 {
		return true
	}
	for _, e := range m.entries {
		j, ok := o.lookup(e.name)
		if !ok {
			return false
		}
		if !slices.EqualFunc(e.values, o.entries[j].values, Value.Equal) {
			return false
		}
	}
	return true
}

func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	for _, e := range m.entries {
		out.index[e.name.String()] = len(out.entries)
		out.entries = append(out.entries, entry{name: e.name, values: slices.Clone(e.values)})
	}
	out.values = m.values
	return out
}

func (m *Map) lookup(name Name) (int, bool) {
	if m == nil || m.index == nil {
		return 0, false
	}
	i, ok := m.index[name.String()]
	return i, ok
}

func (m *Map) push(name Name, v Value) {
	if m.index == nil {
		m.index = make(map[string]int, 16)
	}
	m.index[name.String()] = len(m.entries)
	m.entries = append(m.entries, entry{name: name, values: []Value{v}})
	m.values++
}
