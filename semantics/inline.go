package semantics

import (
	"sort"

	"github.com/awsqed/toml-semantics/rawsyntax"
	"github.com/awsqed/toml-semantics/value"
)

// inlineTableToValue converts an ordered [(Key, Val)] from a {…} literal
// into a single resolved value.Table, per spec.md §4.4:
//
//  1. convert every Val recursively to Value;
//  2. detect overlapping dotted prefixes within the same literal;
//  3. merge entries into a single Table by recursively unioning the
//     single-key paths (identical leaf paths are impossible after step 2).
//
// The result is wrapped by the caller in a frame.ValueFrame, not a
// frame.TableFrame, because inline tables are closed: that rule falls out
// for free from the ValueFrame arms in dotted.go and section.go without a
// special case (spec.md §9). Those arms report AlreadyAssigned, except
// section.go's openTerminal, which reports ClosedTable when a header's last
// segment lands on a value.
func inlineTableToValue(entries []rawsyntax.TableEntry) (value.Value, error) {
	if err := checkNoOverlap(entries); err != nil {
		return value.Value{}, err
	}

	root := value.NewTable()
	for _, e := range entries {
		if err := insertPath(root, e.Key.Segments(), e.Val); err != nil {
			return value.Value{}, err
		}
	}
	return value.NewTableValue(root), nil
}

// checkNoOverlap sorts the entries' key-segment slices lexicographically
// and scans adjacent pairs for an overlap: one key is a (possibly equal)
// prefix of the other. The reported position is the last segment of the
// shorter key, the point where a value-vs-table conflict actually occurs
// (spec.md §8 scenario 6: "a.b = 1, a.b.c = 2" reports at the inner "b").
//
// Ordering note: per spec.md §5, this position is the first segment that
// overlaps an earlier key *after lexicographic sort*, which differs from
// source order but is itself deterministic.
func checkNoOverlap(entries []rawsyntax.TableEntry) error {
	sorted := make([]rawsyntax.TableEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessSegments(sorted[i].Key.Segments(), sorted[j].Key.Segments())
	})

	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1].Key, sorted[i].Key
		as, bs := a.Segments(), b.Segments()
		if isPrefix(as, bs) {
			return newError(AlreadyAssigned, a.Last())
		}
	}
	return nil
}

func lessSegments(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// isPrefix reports whether the shorter of a, b is a prefix of the longer
// (including the equal-length, equal-value case of an outright duplicate
// key).
func isPrefix(a, b []string) bool {
	short, long := a, b
	if len(long) < len(short) {
		short, long = long, short
	}
	for i := range short {
		if short[i] != long[i] {
			return false
		}
	}
	return true
}

// insertPath installs one leaf (segments, val) into root, creating
// intermediate value.Tables as needed. Since checkNoOverlap has already
// ruled out any two full paths standing in a prefix relationship, this can
// never encounter a value-vs-table clash at an exact path.
func insertPath(root *value.Table, remaining []string, val rawsyntax.Val) error {
	head := remaining[0]
	rest := remaining[1:]

	if len(rest) == 0 {
		v, err := valToValue(val)
		if err != nil {
			return err
		}
		root.Set(head, v)
		return nil
	}

	existing, ok := root.Get(head)
	var sub *value.Table
	if ok && existing.Kind() == value.TableKind {
		sub = existing.Table()
	} else {
		sub = value.NewTable()
		root.Set(head, value.NewTableValue(sub))
	}
	return insertPath(sub, rest, val)
}
