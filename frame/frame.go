// Package frame implements the construction-only Frame sum type: the
// mutable-during-construction tree that tracks *how* each table node came
// into existence, so the semantic core can accept or reject a later
// operation that touches it (spec.md §3).
//
// Frame is modeled as an interface with three implementations, the same
// shape the retrieved TOML parsers in this codebase's lineage use for their
// own node types (a sealed set of structs implementing a marker method
// rather than a tagged union struct).
package frame

import "github.com/awsqed/toml-semantics/value"

// Kind is the provenance tag of a TableFrame.
type Kind int

const (
	// Open: created implicitly as a supertable by a later [a.b.c] header;
	// still extendable by further headers.
	Open Kind = iota
	// Dotted: created implicitly by a dotted-key assignment inside the
	// current block; extendable only by sibling dotted keys in the same
	// block, and must be sealed to Closed at the block's end.
	Dotted
	// Closed: created by an explicit header, an inline table, or a
	// completed dotted subtree. No further header or dotted key may
	// extend it.
	Closed
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Dotted:
		return "dotted"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Map is a frame table's set of named children.
type Map = map[string]Frame

// Frame is the construction-time node type. Exactly one of TableFrame,
// ArrayFrame, or ValueFrame implements it for any given node.
type Frame interface {
	isFrame()
}

// TableFrame is a table under construction, tagged with how it came to be.
type TableFrame struct {
	Kind    Kind
	Entries Map
}

func (*TableFrame) isFrame() {}

// NewTableFrame returns a fresh table frame of the given provenance.
func NewTableFrame(kind Kind) *TableFrame {
	return &TableFrame{Kind: kind, Entries: Map{}}
}

// ArrayFrame is the in-progress array-of-tables created by [[x]] headers.
// Elements is stored in reverse append order (newest first), so each [[x]]
// repetition is a prepend that copies the existing elements; the finalizer
// reverses it back to source order. ArrayFrame is never empty (spec.md §3 invariant 3).
type ArrayFrame struct {
	Elements []Map
}

func (*ArrayFrame) isFrame() {}

// Head returns the most recently appended element: the one further headers
// extend.
func (a *ArrayFrame) Head() Map {
	return a.Elements[0]
}

// Prepend adds a new element as the new head, implementing [[x]]'s append
// semantics under the reversed storage order.
func (a *ArrayFrame) Prepend(m Map) {
	a.Elements = append([]Map{m}, a.Elements...)
}

// ValueFrame wraps a fully-resolved value.Value: a scalar, an inline array,
// or an inline table. ValueFrame nodes are closed to any further extension;
// that is the entire reason inline tables are represented this way rather
// than as a FrameTable(Closed, ...) (spec.md §9).
type ValueFrame struct {
	Value value.Value
}

func (*ValueFrame) isFrame() {}
