// Package value implements the immutable sum type of fully-resolved TOML
// values, and the Table map they nest inside.
package value

import "math"

// Kind discriminates the Value sum.
type Kind int

const (
	Integer Kind = iota
	Float
	Bool
	String
	TimeOfDay
	ZonedTime
	LocalDateTime
	LocalDate
	Array
	TableKind
)

// LocalTime is a wall-clock time of day with no date and no offset.
type LocalTime struct {
	Hour, Minute, Second int
	Nanosecond           int
}

// Date is a calendar date with no time component.
type Date struct {
	Year, Month, Day int
}

// DateTime is a local date and local time with no offset.
type DateTime struct {
	Date Date
	Time LocalTime
}

// Zoned is a DateTime plus a UTC offset, in minutes east of UTC.
// OffsetUnknown distinguishes TOML's "-00:00" (unknown local offset) from a
// genuine zero offset, per RFC 3339.
type Zoned struct {
	DateTime      DateTime
	OffsetMinutes int
	OffsetUnknown bool
}

// Value is the sum type described in spec.md §3. Only the field matching
// Kind() is meaningful; the rest are zero.
type Value struct {
	kind Kind

	i   int64
	f   float64
	b   bool
	s   string
	tod LocalTime
	zt  Zoned
	ldt DateTime
	ld  Date
	arr []Value
	tbl *Table
}

func NewInteger(v int64) Value       { return Value{kind: Integer, i: v} }
func NewFloat(v float64) Value       { return Value{kind: Float, f: v} }
func NewBool(v bool) Value           { return Value{kind: Bool, b: v} }
func NewString(v string) Value       { return Value{kind: String, s: v} }
func NewTimeOfDay(v LocalTime) Value { return Value{kind: TimeOfDay, tod: v} }
func NewZonedTime(v Zoned) Value     { return Value{kind: ZonedTime, zt: v} }
func NewLocalDateTime(v DateTime) Value {
	return Value{kind: LocalDateTime, ldt: v}
}
func NewLocalDate(v Date) Value { return Value{kind: LocalDate, ld: v} }
func NewArray(vs []Value) Value { return Value{kind: Array, arr: vs} }
func NewTableValue(t *Table) Value {
	return Value{kind: TableKind, tbl: t}
}

func (v Value) Kind() Kind            { return v.kind }
func (v Value) Int() int64            { return v.i }
func (v Value) FloatVal() float64     { return v.f }
func (v Value) Bool() bool            { return v.b }
func (v Value) Str() string           { return v.s }
func (v Value) TimeOfDay() LocalTime  { return v.tod }
func (v Value) ZonedTime() Zoned      { return v.zt }
func (v Value) LocalDateTime() DateTime { return v.ldt }
func (v Value) LocalDate() Date       { return v.ld }
func (v Value) Array() []Value        { return v.arr }
func (v Value) Table() *Table         { return v.tbl }

// Equal compares two values modulo table-key order, per spec.md §8's
// round-trip law. Float NaN payloads compare equal to each other
// (isNaN-agnostic), as the Open Question in spec.md §9 allows.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Integer:
		return v.i == other.i
	case Float:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case Bool:
		return v.b == other.b
	case String:
		return v.s == other.s
	case TimeOfDay:
		return v.tod == other.tod
	case ZonedTime:
		return v.zt == other.zt
	case LocalDateTime:
		return v.ldt == other.ldt
	case LocalDate:
		return v.ld == other.ld
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case TableKind:
		return v.tbl.Equal(other.tbl)
	}
	return false
}
