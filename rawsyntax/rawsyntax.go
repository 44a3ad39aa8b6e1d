// Package rawsyntax defines the pre-semantic shapes the lexical/syntactic
// front-end hands to the semantic core: dotted keys, raw (not yet
// conflict-checked) values, and the three top-level expression shapes.
//
// These are the "Key", "Val", and "Expr" types of spec.md §3 and §6. A
// front-end (see tomlfront) produces these; the core (see semantics) never
// produces or mutates them.
package rawsyntax

import (
	"github.com/awsqed/toml-semantics/pos"
	"github.com/awsqed/toml-semantics/value"
)

// Key is a non-empty dotted key: one Located segment per dotted component.
// "a.b.c" is []Located[string]{a, b, c}.
type Key []pos.Located[string]

// Last returns the final segment, the one a conflict is always reported
// against for a terminal-position error.
func (k Key) Last() pos.Located[string] {
	return k[len(k)-1]
}

// Segments returns the bare strings, for comparisons that don't need
// positions.
func (k Key) Segments() []string {
	out := make([]string, len(k))
	for i, s := range k {
		out[i] = s.Value
	}
	return out
}

// ValKind discriminates the raw value sum. It mirrors value.Kind except
// Array and Table carry un-conflict-checked payloads (ValArray, ValTable)
// rather than resolved ones.
type ValKind int

const (
	ValString ValKind = iota
	ValInteger
	ValFloat
	ValBool
	ValTimeOfDay
	ValZonedTime
	ValLocalDateTime
	ValLocalDate
	ValArray
	ValTable
)

// TableEntry is one (key, value) pair inside a ValTable, i.e. one field of
// an inline table literal or one key/value line inside a block.
type TableEntry struct {
	Key Key
	Val Val
}

// Val is the raw, pre-semantic value literal: scalar variants as in
// value.Value, plus ValArray (ordered elements) and ValTable (association
// list, order preserved so inline-table key conflicts can be reported in
// source terms before de-duplication, per spec.md §3).
type Val struct {
	Kind ValKind
	Pos  pos.Position

	Str           string
	Int           int64
	Float         float64
	Bool          bool
	TimeOfDay     value.LocalTime
	ZonedTime     value.Zoned
	LocalDateTime value.DateTime
	LocalDate     value.Date
	Array         []Val
	Table         []TableEntry
}

// ExprKind discriminates the three top-level expression shapes a TOML
// document is a sequence of.
type ExprKind int

const (
	KeyValExpr ExprKind = iota
	TableExpr
	ArrayTableExpr
)

// Expr is one top-level expression from the parsed stream: a dotted-key
// assignment, a [table] header, or a [[array-of-tables]] header.
type Expr struct {
	Kind ExprKind
	Key  Key
	Val  Val // only meaningful when Kind == KeyValExpr
}
