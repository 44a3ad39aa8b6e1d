package semantics

import (
	"github.com/awsqed/toml-semantics/frame"
	"github.com/awsqed/toml-semantics/value"
)

// finalize recursively transforms a frame.Map into a value.Table after the
// whole document has been absorbed, per spec.md §4.5. Frame provenance is
// irrelevant post-finalize; only the ArrayFrame's reversed storage order
// needs undoing to restore source order.
func finalize(m frame.Map) *value.Table {
	t := value.NewTable()
	for k, f := range m {
		t.Set(k, finalizeFrame(f))
	}
	return t
}

func finalizeFrame(f frame.Frame) value.Value {
	switch fr := f.(type) {
	case *frame.ValueFrame:
		return fr.Value
	case *frame.TableFrame:
		return value.NewTableValue(finalize(fr.Entries))
	case *frame.ArrayFrame:
		n := len(fr.Elements)
		arr := make([]value.Value, n)
		for i, m := range fr.Elements {
			// Elements is stored newest-first; reverse it back to the
			// order array-of-tables headers appeared in the source.
			arr[n-1-i] = value.NewTableValue(finalize(m))
		}
		return value.NewArray(arr)
	default:
		panic("semantics: unreachable frame kind in finalize")
	}
}
