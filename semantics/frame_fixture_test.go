package semantics

import (
	"fmt"
	"sort"

	"github.com/awsqed/toml-semantics/frame"
	"github.com/awsqed/toml-semantics/value"
)

// frameMapFixture builds a small frame tree with nested Dotted frames, the
// shape applyBlock would have produced mid-fold, before seal runs.
func frameMapFixture() frame.Map {
	return frame.Map{
		"a": &frame.TableFrame{
			Kind: frame.Dotted,
			Entries: frame.Map{
				"b": &frame.TableFrame{
					Kind: frame.Dotted,
					Entries: frame.Map{
						"c": &frame.ValueFrame{Value: value.NewInteger(1)},
					},
				},
			},
		},
		"x": &frame.TableFrame{
			Kind:    frame.Open,
			Entries: frame.Map{"y": &frame.ValueFrame{Value: value.NewInteger(2)}},
		},
	}
}

func cloneFrameMap(m frame.Map) frame.Map {
	out := frame.Map{}
	for k, f := range m {
		switch fr := f.(type) {
		case *frame.TableFrame:
			out[k] = &frame.TableFrame{Kind: fr.Kind, Entries: cloneFrameMap(fr.Entries)}
		case *frame.ArrayFrame:
			elems := make([]frame.Map, len(fr.Elements))
			for i, e := range fr.Elements {
				elems[i] = cloneFrameMap(e)
			}
			out[k] = &frame.ArrayFrame{Elements: elems}
		case *frame.ValueFrame:
			out[k] = &frame.ValueFrame{Value: fr.Value}
		}
	}
	return out
}

// describeFrameMap renders a frame tree as a deterministic string so tests
// can assert structural equality without caring about pointer identity.
func describeFrameMap(m frame.Map) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := "{"
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		switch fr := m[k].(type) {
		case *frame.TableFrame:
			out += fmt.Sprintf("%s=table(%s,%s)", k, fr.Kind, describeFrameMap(fr.Entries))
		case *frame.ArrayFrame:
			out += fmt.Sprintf("%s=array(", k)
			for j, e := range fr.Elements {
				if j > 0 {
					out += ";"
				}
				out += describeFrameMap(e)
			}
			out += ")"
		case *frame.ValueFrame:
			out += fmt.Sprintf("%s=value", k)
		}
	}
	out += "}"
	return out
}
