package semantics

import (
	"fmt"

	"github.com/awsqed/toml-semantics/frame"
	"github.com/awsqed/toml-semantics/pos"
	"github.com/awsqed/toml-semantics/rawsyntax"
)

// openSection installs one [section] or [[section]] block, per spec.md
// §4.3. It navigates/creates intermediate frames with the header's
// provenance rules and folds the block's key/values into the terminal
// table via applyBlock.
func openSection(kind SectionKind, headerKey rawsyntax.Key, kvs []rawsyntax.TableEntry, frames frame.Map) (frame.Map, error) {
	return openPath([]pos.Located[string](headerKey), kind, kvs, frames)
}

func openPath(segments []pos.Located[string], kind SectionKind, kvs []rawsyntax.TableEntry, frames frame.Map) (frame.Map, error) {
	head := segments[0]
	rest := segments[1:]

	if len(rest) == 0 {
		return openTerminal(head, kind, kvs, frames)
	}
	return openInterior(head, rest, kind, kvs, frames)
}

func openTerminal(head pos.Located[string], kind SectionKind, kvs []rawsyntax.TableEntry, frames frame.Map) (frame.Map, error) {
	existing, ok := frames[head.Value]
	if !ok {
		switch kind {
		case TableSection:
			entries, err := applyBlock(kvs, frame.Map{})
			if err != nil {
				return nil, err
			}
			frames[head.Value] = &frame.TableFrame{Kind: frame.Closed, Entries: entries}
		case ArrayTableSection:
			entries, err := applyBlock(kvs, frame.Map{})
			if err != nil {
				return nil, err
			}
			frames[head.Value] = &frame.ArrayFrame{Elements: []frame.Map{entries}}
		}
		return frames, nil
	}

	switch f := existing.(type) {
	case *frame.TableFrame:
		switch f.Kind {
		case frame.Open:
			switch kind {
			case TableSection:
				// Promote the implicit supertable to explicit.
				entries, err := applyBlock(kvs, f.Entries)
				if err != nil {
					return nil, err
				}
				frames[head.Value] = &frame.TableFrame{Kind: frame.Closed, Entries: entries}
			case ArrayTableSection:
				return nil, newError(ImplicitlyTable, head)
			}
			return frames, nil
		case frame.Closed:
			return nil, newError(ClosedTable, head)
		case frame.Dotted:
			// A Dotted frame from a prior block must already have been
			// sealed by applyBlock at that block's boundary. Seeing one
			// here is an internal invariant violation, not a user error
			// (spec.md §4.3, §7).
			panic(fmt.Sprintf("semantics: internal invariant violation: unsealed Dotted frame at %q", head.Value))
		}
	case *frame.ArrayFrame:
		switch kind {
		case ArrayTableSection:
			entries, err := applyBlock(kvs, frame.Map{})
			if err != nil {
				return nil, err
			}
			f.Prepend(entries)
		case TableSection:
			return nil, newError(ClosedTable, head)
		}
		return frames, nil
	case *frame.ValueFrame:
		// A header can never reopen a plain value, and in particular never
		// reopen an inline table: inline tables are represented as
		// ValueFrame specifically so this arm covers both (spec.md §8
		// scenario 7, §9).
		return nil, newError(ClosedTable, head)
	}
	return frames, nil
}

func openInterior(head pos.Located[string], rest []pos.Located[string], kind SectionKind, kvs []rawsyntax.TableEntry, frames frame.Map) (frame.Map, error) {
	existing, ok := frames[head.Value]
	if !ok {
		sub, err := openPath(rest, kind, kvs, frame.Map{})
		if err != nil {
			return nil, err
		}
		frames[head.Value] = &frame.TableFrame{Kind: frame.Open, Entries: sub}
		return frames, nil
	}

	switch f := existing.(type) {
	case *frame.TableFrame:
		sub, err := openPath(rest, kind, kvs, f.Entries)
		if err != nil {
			return nil, err
		}
		frames[head.Value] = &frame.TableFrame{Kind: f.Kind, Entries: sub}
		return frames, nil
	case *frame.ArrayFrame:
		// Array-of-tables extends the most recently appended element.
		sub, err := openPath(rest, kind, kvs, f.Head())
		if err != nil {
			return nil, err
		}
		f.Elements[0] = sub
		return frames, nil
	case *frame.ValueFrame:
		return nil, newError(AlreadyAssigned, head)
	}
	return frames, nil
}

// applyBlock folds the dotted-key assigner over kvs starting from t, then
// seals every Dotted frame the fold produced: this enforces the rule that a
// dotted intermediate is extendable only by siblings in the same block
// (spec.md §4.3).
func applyBlock(kvs []rawsyntax.TableEntry, t frame.Map) (frame.Map, error) {
	for _, kv := range kvs {
		var err error
		t, err = assignDotted(kv.Key, kv.Val, t)
		if err != nil {
			return nil, err
		}
	}
	return seal(t), nil
}

// seal recursively closes every Dotted frame in m. Non-dotted frames (Open,
// Closed, array, value) pass through unchanged, but their table entries are
// still walked so that a Dotted frame reached by traversing through an
// older Open/Closed table (because this block's dotted keys touched it) is
// found and sealed too. Sealing is idempotent: a frame already Closed stays
// Closed.
func seal(m frame.Map) frame.Map {
	for k, f := range m {
		tf, ok := f.(*frame.TableFrame)
		if !ok {
			continue
		}
		sealedEntries := seal(tf.Entries)
		kind := tf.Kind
		if kind == frame.Dotted {
			kind = frame.Closed
		}
		m[k] = &frame.TableFrame{Kind: kind, Entries: sealedEntries}
	}
	return m
}
