package semantics

import (
	"github.com/awsqed/toml-semantics/frame"
	"github.com/awsqed/toml-semantics/pos"
	"github.com/awsqed/toml-semantics/rawsyntax"
	"github.com/awsqed/toml-semantics/value"
)

// assignDotted installs one key.path = value into frames, per spec.md §4.2.
// frames is mutated in place and also returned for readability at call
// sites; on error, the caller discards frames — every caller of this
// function aborts the whole document on the first error, so a partially
// mutated map is never inspected (spec.md §5).
func assignDotted(key rawsyntax.Key, val rawsyntax.Val, frames frame.Map) (frame.Map, error) {
	return assignSegments([]pos.Located[string](key), val, frames)
}

func assignSegments(segments []pos.Located[string], val rawsyntax.Val, frames frame.Map) (frame.Map, error) {
	head := segments[0]
	rest := segments[1:]

	if len(rest) == 0 {
		_, ok := frames[head.Value]
		if !ok {
			v, err := valToValue(val)
			if err != nil {
				return nil, err
			}
			frames[head.Value] = &frame.ValueFrame{Value: v}
			return frames, nil
		}
		return nil, newError(AlreadyAssigned, head)
	}

	existing, ok := frames[head.Value]
	if !ok {
		sub, err := assignSegments(rest, val, frame.Map{})
		if err != nil {
			return nil, err
		}
		frames[head.Value] = &frame.TableFrame{Kind: frame.Dotted, Entries: sub}
		return frames, nil
	}

	switch f := existing.(type) {
	case *frame.TableFrame:
		if f.Kind == frame.Closed {
			return nil, newError(ClosedTable, head)
		}
		// Open or Dotted: recurse, then demote the result to Dotted.
		// Even when traversing a previously Open subtable, the result of
		// *this* assignment is labelled Dotted, because the current
		// assignment's provenance is dotted even if its spine was opened
		// by an earlier header (spec.md §4.2).
		sub, err := assignSegments(rest, val, f.Entries)
		if err != nil {
			return nil, err
		}
		frames[head.Value] = &frame.TableFrame{Kind: frame.Dotted, Entries: sub}
		return frames, nil
	case *frame.ArrayFrame:
		return nil, newError(ClosedTable, head)
	case *frame.ValueFrame:
		return nil, newError(AlreadyAssigned, head)
	default:
		return nil, newError(AlreadyAssigned, head)
	}
}

// valToValue maps a raw, pre-semantic Val to a resolved value.Value. Scalar
// variants map one-to-one, ValArray maps elementwise, and ValTable is
// handed to the inline-table validator (spec.md §4.4), since an inline
// table must detect its own overlapping-prefix conflicts before it can be
// merged into a single value.Value.
func valToValue(val rawsyntax.Val) (value.Value, error) {
	switch val.Kind {
	case rawsyntax.ValString:
		return value.NewString(val.Str), nil
	case rawsyntax.ValInteger:
		return value.NewInteger(val.Int), nil
	case rawsyntax.ValFloat:
		return value.NewFloat(val.Float), nil
	case rawsyntax.ValBool:
		return value.NewBool(val.Bool), nil
	case rawsyntax.ValTimeOfDay:
		return value.NewTimeOfDay(val.TimeOfDay), nil
	case rawsyntax.ValZonedTime:
		return value.NewZonedTime(val.ZonedTime), nil
	case rawsyntax.ValLocalDateTime:
		return value.NewLocalDateTime(val.LocalDateTime), nil
	case rawsyntax.ValLocalDate:
		return value.NewLocalDate(val.LocalDate), nil
	case rawsyntax.ValArray:
		elems := make([]value.Value, len(val.Array))
		for i, e := range val.Array {
			v, err := valToValue(e)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = v
		}
		return value.NewArray(elems), nil
	case rawsyntax.ValTable:
		return inlineTableToValue(val.Table)
	default:
		return value.Value{}, nil
	}
}
