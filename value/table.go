package value

import "sort"

// Table is a mapping from string keys to Value, with keys unique per table.
// Iteration order is unspecified for semantic equality but stable for the
// renderer: Keys returns insertion order, SortedKeys returns alphabetical
// order for callers (such as the pretty-printer, spec-external) that want a
// deterministic projection.
type Table struct {
	order []string
	m     map[string]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: make(map[string]Value)}
}

// Set installs key -> v, appending key to the insertion order the first
// time it is seen.
func (t *Table) Set(key string, v Value) {
	if _, ok := t.m[key]; !ok {
		t.order = append(t.order, key)
	}
	t.m[key] = v
}

// Get looks up key.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.m[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.m[key]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.m)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// SortedKeys returns the keys in alphabetical order, for the renderer.
func (t *Table) SortedKeys() []string {
	out := t.Keys()
	sort.Strings(out)
	return out
}

// Equal compares two tables modulo key order.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Len() != other.Len() {
		return false
	}
	for k, v := range t.m {
		ov, ok := other.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
