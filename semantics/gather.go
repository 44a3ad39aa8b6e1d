package semantics

import "github.com/awsqed/toml-semantics/rawsyntax"

// SectionKind distinguishes a [table] header from a [[array-of-tables]]
// header.
type SectionKind int

const (
	TableSection SectionKind = iota
	ArrayTableSection
)

// Section is one (section-kind, section-key, key/value block) triple, as
// produced by the gatherer (spec.md §4.1).
type Section struct {
	Kind SectionKind
	Key  rawsyntax.Key
	KVs  []rawsyntax.TableEntry
}

// gather partitions the expression stream into the top-level key/value
// block plus the ordered sequence of sections. Order of key/values within
// each block, and order of sections, is preserved.
func gather(exprs []rawsyntax.Expr) (topKVs []rawsyntax.TableEntry, sections []Section) {
	var current *Section
	for _, e := range exprs {
		switch e.Kind {
		case rawsyntax.KeyValExpr:
			entry := rawsyntax.TableEntry{Key: e.Key, Val: e.Val}
			if current != nil {
				current.KVs = append(current.KVs, entry)
			} else {
				topKVs = append(topKVs, entry)
			}
		case rawsyntax.TableExpr:
			sections = append(sections, Section{Kind: TableSection, Key: e.Key})
			current = &sections[len(sections)-1]
		case rawsyntax.ArrayTableExpr:
			sections = append(sections, Section{Kind: ArrayTableSection, Key: e.Key})
			current = &sections[len(sections)-1]
		}
	}
	return topKVs, sections
}
