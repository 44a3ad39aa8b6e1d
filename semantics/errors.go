package semantics

import (
	"fmt"

	"github.com/awsqed/toml-semantics/pos"
)

// ErrorKind is the semantic error taxonomy of spec.md §4.6 / §7.
type ErrorKind int

const (
	// AlreadyAssigned: value-vs-value, value-vs-table, or overlapping
	// inline-table keys.
	AlreadyAssigned ErrorKind = iota
	// ClosedTable: an attempt to extend a closed table or to retarget an
	// array-of-tables element as a plain table.
	ClosedTable
	// ImplicitlyTable: [[x]] where x was already implicitly defined as a
	// table by an earlier [x.y] header.
	ImplicitlyTable
)

// SemanticError is a located, categorized failure of the resolution core.
// Errors are values, never exceptions: every fallible function in this
// package returns one instead of panicking (the single documented
// exception being the internal-invariant check in section.go).
type SemanticError struct {
	Kind ErrorKind
	Key  string
	Pos  pos.Position
}

func (e *SemanticError) Error() string {
	switch e.Kind {
	case AlreadyAssigned:
		return fmt.Sprintf("%s: key error: %q is already assigned", e.Pos, e.Key)
	case ClosedTable:
		return fmt.Sprintf("%s: key error: %q is a closed table", e.Pos, e.Key)
	case ImplicitlyTable:
		return fmt.Sprintf("%s: key error: %q is already implicitly defined to be a table", e.Pos, e.Key)
	default:
		return fmt.Sprintf("%s: key error: %q", e.Pos, e.Key)
	}
}

func newError(kind ErrorKind, seg pos.Located[string]) *SemanticError {
	return &SemanticError{Kind: kind, Key: seg.Value, Pos: seg.Pos}
}
