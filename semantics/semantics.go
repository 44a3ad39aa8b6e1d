// Package semantics implements the semantic resolution core described in
// spec.md: it converts a flat sequence of parsed top-level expressions into
// a single tree-shaped value.Table, rejecting every ill-formed key
// interaction the TOML specification forbids.
package semantics

import (
	"github.com/awsqed/toml-semantics/frame"
	"github.com/awsqed/toml-semantics/rawsyntax"
	"github.com/awsqed/toml-semantics/value"
)

// Semantics is the core's single entry point (spec.md §6):
//
//	semantics : [Expr] -> Either<Located<SemanticError>, Table>
//
// In Go, that Either is a plain (*value.Table, error) pair; the error, when
// non-nil, is always a *SemanticError.
func Semantics(exprs []rawsyntax.Expr) (*value.Table, error) {
	topKVs, sections := gather(exprs)

	frames, err := applyBlock(topKVs, frame.Map{})
	if err != nil {
		return nil, err
	}

	for _, s := range sections {
		frames, err = openSection(s.Kind, s.Key, s.KVs, frames)
		if err != nil {
			return nil, err
		}
	}

	return finalize(frames), nil
}
