// Package tomlfront is the lexical/syntactic front-end spec.md §1 treats as
// an external collaborator, made concrete: it wraps
// github.com/pelletier/go-toml/v2/unstable's low-level parser and converts
// its expression stream into the rawsyntax types the semantic core
// consumes, attaching a line/column Position to every key segment.
//
// Grounded directly in cuelang.org/go/encoding/toml's Decoder (from the
// cue-lang-cue example, not the teacher repo), which drives the same
// unstable.Parser the same way: Reset the raw bytes, loop
// NextExpression/Expression, switch on Kind, walk Key()/Value()/Children()
// iterators. Position conversion calls the parser's own Shape method
// rather than re-deriving line/column from byte offsets.
package tomlfront

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2/unstable"

	"github.com/awsqed/toml-semantics/pos"
	"github.com/awsqed/toml-semantics/rawsyntax"
)

// Parse turns a complete TOML document into the flat []rawsyntax.Expr
// stream the semantic core consumes.
func Parse(data []byte) ([]rawsyntax.Expr, error) {
	p := &toml.Parser{}
	p.Reset(data)

	var exprs []rawsyntax.Expr
	for p.NextExpression() {
		expr, err := convertTopLevel(p, p.Expression())
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// position reads a node's start position via the parser's own Shape
// method, the same call cue-lang-cue's own tree-printing tooling makes on
// this Node/Range pair.
func position(p *toml.Parser, node *toml.Node) pos.Position {
	s := p.Shape(node.Raw)
	return pos.Position{Line: s.Start.Line, Column: s.Start.Column}
}

func convertTopLevel(p *toml.Parser, node *toml.Node) (rawsyntax.Expr, error) {
	switch node.Kind {
	case toml.KeyValue:
		key, err := convertKey(p, node)
		if err != nil {
			return rawsyntax.Expr{}, err
		}
		val, err := convertValue(p, node.Value())
		if err != nil {
			return rawsyntax.Expr{}, err
		}
		return rawsyntax.Expr{Kind: rawsyntax.KeyValExpr, Key: key, Val: val}, nil
	case toml.Table:
		key, err := convertKey(p, node)
		if err != nil {
			return rawsyntax.Expr{}, err
		}
		return rawsyntax.Expr{Kind: rawsyntax.TableExpr, Key: key}, nil
	case toml.ArrayTable:
		key, err := convertKey(p, node)
		if err != nil {
			return rawsyntax.Expr{}, err
		}
		return rawsyntax.Expr{Kind: rawsyntax.ArrayTableExpr, Key: key}, nil
	default:
		return rawsyntax.Expr{}, fmt.Errorf("tomlfront: unexpected top-level node kind %v", node.Kind)
	}
}

// convertKey walks a node's Key() iterator into a rawsyntax.Key, one
// Located segment per dotted component.
func convertKey(p *toml.Parser, node *toml.Node) (rawsyntax.Key, error) {
	var key rawsyntax.Key
	iter := node.Key()
	for iter.Next() {
		seg := iter.Node()
		key = append(key, pos.At(string(seg.Data), position(p, seg)))
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("tomlfront: empty key")
	}
	return key, nil
}

func convertValue(p *toml.Parser, node *toml.Node) (rawsyntax.Val, error) {
	pp := position(p, node)
	switch node.Kind {
	case toml.String:
		return rawsyntax.Val{Kind: rawsyntax.ValString, Pos: pp, Str: string(node.Data)}, nil
	case toml.Integer:
		iv, err := parseInteger(string(node.Data))
		if err != nil {
			return rawsyntax.Val{}, err
		}
		return rawsyntax.Val{Kind: rawsyntax.ValInteger, Pos: pp, Int: iv}, nil
	case toml.Float:
		fv, err := parseFloat(string(node.Data))
		if err != nil {
			return rawsyntax.Val{}, err
		}
		return rawsyntax.Val{Kind: rawsyntax.ValFloat, Pos: pp, Float: fv}, nil
	case toml.Bool:
		return rawsyntax.Val{Kind: rawsyntax.ValBool, Pos: pp, Bool: string(node.Data) == "true"}, nil
	case toml.LocalDate:
		d, err := parseDate(string(node.Data))
		if err != nil {
			return rawsyntax.Val{}, err
		}
		return rawsyntax.Val{Kind: rawsyntax.ValLocalDate, Pos: pp, LocalDate: d}, nil
	case toml.LocalTime:
		tod, err := parseLocalTime(string(node.Data))
		if err != nil {
			return rawsyntax.Val{}, err
		}
		return rawsyntax.Val{Kind: rawsyntax.ValTimeOfDay, Pos: pp, TimeOfDay: tod}, nil
	case toml.LocalDateTime:
		dt, err := parseLocalDateTime(string(node.Data))
		if err != nil {
			return rawsyntax.Val{}, err
		}
		return rawsyntax.Val{Kind: rawsyntax.ValLocalDateTime, Pos: pp, LocalDateTime: dt}, nil
	case toml.DateTime:
		z, err := parseZonedDateTime(string(node.Data))
		if err != nil {
			return rawsyntax.Val{}, err
		}
		return rawsyntax.Val{Kind: rawsyntax.ValZonedTime, Pos: pp, ZonedTime: z}, nil
	case toml.Array:
		var elems []rawsyntax.Val
		iter := node.Children()
		for iter.Next() {
			v, err := convertValue(p, iter.Node())
			if err != nil {
				return rawsyntax.Val{}, err
			}
			elems = append(elems, v)
		}
		return rawsyntax.Val{Kind: rawsyntax.ValArray, Pos: pp, Array: elems}, nil
	case toml.InlineTable:
		var entries []rawsyntax.TableEntry
		iter := node.Children()
		for iter.Next() {
			field := iter.Node()
			key, err := convertKey(p, field)
			if err != nil {
				return rawsyntax.Val{}, err
			}
			val, err := convertValue(p, field.Value())
			if err != nil {
				return rawsyntax.Val{}, err
			}
			entries = append(entries, rawsyntax.TableEntry{Key: key, Val: val})
		}
		return rawsyntax.Val{Kind: rawsyntax.ValTable, Pos: pp, Table: entries}, nil
	default:
		return rawsyntax.Val{}, fmt.Errorf("tomlfront: unexpected value node kind %v", node.Kind)
	}
}
