package render

import (
	"strconv"
	"strings"
)

// ScopeKind discriminates one segment of a decode-match scope path.
type ScopeKind int

const (
	ScopeKeySeg ScopeKind = iota
	ScopeIndexSeg
)

// ScopeSegment is one element of a MatchMessage's scope: either a named
// table key or an array index, mirroring spec.md §4.6's
// "ScopeKey String | ScopeIndex Int".
type ScopeSegment struct {
	Kind  ScopeKind
	Key   string
	Index int
}

func ScopeKey(k string) ScopeSegment  { return ScopeSegment{Kind: ScopeKeySeg, Key: k} }
func ScopeIndex(i int) ScopeSegment   { return ScopeSegment{Kind: ScopeIndexSeg, Index: i} }

// MatchMessage is the shape the value-to-domain-object decoder (a
// spec-external collaborator) is expected to produce; the core only
// constrains its interface shape and renders it, per spec.md §4.6.
type MatchMessage struct {
	Scope []ScopeSegment
	Text  string
}

// Match renders "<text> in top<scope-suffix>", where the suffix joins "."
// before keys and "[i]" for indices.
func Match(m MatchMessage) string {
	var b strings.Builder
	b.WriteString(m.Text)
	b.WriteString(" in top")
	for _, seg := range m.Scope {
		switch seg.Kind {
		case ScopeKeySeg:
			b.WriteByte('.')
			b.WriteString(QuoteKey(seg.Key))
		case ScopeIndexSeg:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}
