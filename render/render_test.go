package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awsqed/toml-semantics/pos"
	"github.com/awsqed/toml-semantics/render"
	"github.com/awsqed/toml-semantics/semantics"
)

func TestQuoteKeyBareVsQuoted(t *testing.T) {
	assert.Equal(t, "abc-def_123", render.QuoteKey("abc-def_123"))
	assert.Equal(t, `"has space"`, render.QuoteKey("has space"))
	assert.Equal(t, `"a\"b"`, render.QuoteKey(`a"b`))
}

func TestErrorRendering(t *testing.T) {
	err := &semantics.SemanticError{
		Kind: semantics.ClosedTable,
		Key:  "a",
		Pos:  pos.Position{Line: 2, Column: 1},
	}
	assert.Equal(t, `2:1: key error: a is a closed table`, render.Error(err))
}

func TestMatchMessageRendering(t *testing.T) {
	m := render.MatchMessage{
		Scope: []render.ScopeSegment{render.ScopeKey("servers"), render.ScopeIndex(0), render.ScopeKey("host")},
		Text:  "unexpected type",
	}
	assert.Equal(t, "unexpected type in top.servers[0].host", render.Match(m))
}
