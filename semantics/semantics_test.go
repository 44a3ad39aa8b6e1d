package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsqed/toml-semantics/pos"
	"github.com/awsqed/toml-semantics/rawsyntax"
	"github.com/awsqed/toml-semantics/value"
)

// key builds a rawsyntax.Key from bare segment names, each given a distinct
// fake column so position-preservation assertions have something to check.
func key(segs ...string) rawsyntax.Key {
	k := make(rawsyntax.Key, len(segs))
	for i, s := range segs {
		k[i] = pos.At(s, pos.Position{Line: 1, Column: i + 1})
	}
	return k
}

func intVal(v int64) rawsyntax.Val {
	return rawsyntax.Val{Kind: rawsyntax.ValInteger, Int: v}
}

func kv(k rawsyntax.Key, v rawsyntax.Val) rawsyntax.Expr {
	return rawsyntax.Expr{Kind: rawsyntax.KeyValExpr, Key: k, Val: v}
}

func table(k rawsyntax.Key) rawsyntax.Expr {
	return rawsyntax.Expr{Kind: rawsyntax.TableExpr, Key: k}
}

func arrayTable(k rawsyntax.Key) rawsyntax.Expr {
	return rawsyntax.Expr{Kind: rawsyntax.ArrayTableExpr, Key: k}
}

func mustInt(t *testing.T, tbl *value.Table, path ...string) int64 {
	t.Helper()
	var v value.Value
	cur := tbl
	for i, p := range path {
		got, ok := cur.Get(p)
		require.Truef(t, ok, "missing key %q at %v", p, path[:i+1])
		v = got
		if i < len(path)-1 {
			require.Equal(t, value.TableKind, v.Kind())
			cur = v.Table()
		}
	}
	require.Equal(t, value.Integer, v.Kind())
	return v.Int()
}

// Scenario 1: dotted-key supertable creation.
func TestDottedKeySupertableCreation(t *testing.T) {
	exprs := []rawsyntax.Expr{kv(key("a", "b", "c"), intVal(1))}

	tbl, err := Semantics(exprs)
	require.NoError(t, err)
	assert.EqualValues(t, 1, mustInt(t, tbl, "a", "b", "c"))
}

// Scenario 2: dotted-key then explicit header conflict.
func TestDottedKeyThenHeaderConflict(t *testing.T) {
	exprs := []rawsyntax.Expr{
		kv(key("a", "b"), intVal(1)),
		table(key("a")),
	}

	_, err := Semantics(exprs)
	require.Error(t, err)
	semErr, ok := err.(*SemanticError)
	require.True(t, ok)
	assert.Equal(t, ClosedTable, semErr.Kind)
	assert.Equal(t, "a", semErr.Key)
}

// Scenario 3: implicit supertable promotion.
func TestImplicitSupertablePromotion(t *testing.T) {
	exprs := []rawsyntax.Expr{
		table(key("a", "b")),
		kv(key("x"), intVal(1)),
		table(key("a")),
		kv(key("y"), intVal(2)),
	}

	tbl, err := Semantics(exprs)
	require.NoError(t, err)
	assert.EqualValues(t, 1, mustInt(t, tbl, "a", "b", "x"))
	assert.EqualValues(t, 2, mustInt(t, tbl, "a", "y"))
}

// Scenario 4: array-of-tables append order.
func TestArrayOfTablesAppendOrder(t *testing.T) {
	exprs := []rawsyntax.Expr{
		arrayTable(key("x")),
		kv(key("n"), intVal(1)),
		arrayTable(key("x")),
		kv(key("n"), intVal(2)),
	}

	tbl, err := Semantics(exprs)
	require.NoError(t, err)

	xv, ok := tbl.Get("x")
	require.True(t, ok)
	require.Equal(t, value.Array, xv.Kind())
	require.Len(t, xv.Array(), 2)

	n0, _ := xv.Array()[0].Table().Get("n")
	n1, _ := xv.Array()[1].Table().Get("n")
	assert.EqualValues(t, 1, n0.Int())
	assert.EqualValues(t, 2, n1.Int())
}

// Scenario 5: [[x]] where x is already a table.
func TestArrayTableOnExistingTable(t *testing.T) {
	exprs := []rawsyntax.Expr{
		table(key("x")),
		arrayTable(key("x")),
	}

	_, err := Semantics(exprs)
	require.Error(t, err)
	semErr := err.(*SemanticError)
	assert.Equal(t, ClosedTable, semErr.Kind)
	assert.Equal(t, "x", semErr.Key)
}

// Scenario 6: inline-table overlap.
func TestInlineTableOverlap(t *testing.T) {
	inline := rawsyntax.Val{
		Kind: rawsyntax.ValTable,
		Table: []rawsyntax.TableEntry{
			{Key: key("a", "b"), Val: intVal(1)},
			{Key: key("a", "b", "c"), Val: intVal(2)},
		},
	}
	exprs := []rawsyntax.Expr{kv(key("t"), inline)}

	_, err := Semantics(exprs)
	require.Error(t, err)
	semErr := err.(*SemanticError)
	assert.Equal(t, AlreadyAssigned, semErr.Kind)
	assert.Equal(t, "b", semErr.Key)
}

// Scenario 7: inline-table immutability.
func TestInlineTableImmutability(t *testing.T) {
	inline := rawsyntax.Val{
		Kind:  rawsyntax.ValTable,
		Table: []rawsyntax.TableEntry{{Key: key("a"), Val: intVal(1)}},
	}
	exprs := []rawsyntax.Expr{
		kv(key("t"), inline),
		table(key("t")),
	}

	_, err := Semantics(exprs)
	require.Error(t, err)
	semErr := err.(*SemanticError)
	assert.Equal(t, ClosedTable, semErr.Kind)
	assert.Equal(t, "t", semErr.Key)
}

// Interior navigation through an array of tables: after two [[x]] headers,
// [x.y] extends the most recently appended element, which finalize puts
// last in source order.
func TestArrayOfTablesInteriorNavigation(t *testing.T) {
	exprs := []rawsyntax.Expr{
		arrayTable(key("x")),
		kv(key("n"), intVal(1)),
		arrayTable(key("x")),
		kv(key("n"), intVal(2)),
		table(key("x", "y")),
		kv(key("z"), intVal(3)),
	}

	tbl, err := Semantics(exprs)
	require.NoError(t, err)
	xv, _ := tbl.Get("x")
	require.Equal(t, value.Array, xv.Kind())
	last := xv.Array()[1].Table()
	assert.EqualValues(t, 3, mustInt(t, last, "y", "z"))
}

// Idempotent sealing: applying seal twice is equal to applying it once.
func TestIdempotentSealing(t *testing.T) {
	m := frameMapFixture()
	once := seal(cloneFrameMap(m))
	twice := seal(seal(cloneFrameMap(m)))
	assert.Equal(t, describeFrameMap(once), describeFrameMap(twice))
}

func TestDeterminism(t *testing.T) {
	exprs := []rawsyntax.Expr{
		kv(key("a", "b"), intVal(1)),
		table(key("c")),
		kv(key("d"), intVal(2)),
	}
	first, err1 := Semantics(exprs)
	require.NoError(t, err1)
	second, err2 := Semantics(exprs)
	require.NoError(t, err2)
	assert.True(t, first.Equal(second))
}
