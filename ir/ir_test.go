package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetKeepsOrder(t *testing.T) {
	obj := Object().
		Set("b", FromInt(1)).
		Set("a", FromInt(2)).
		Set("b", FromInt(3))
	if len(obj.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(obj.Fields))
	}
	if obj.Fields[0] != "b" || obj.Fields[1] != "a" {
		t.Errorf("field order %v, want [b a]", obj.Fields)
	}
	if v := Get(obj, "b"); v == nil || *v.Int64 != 3 {
		t.Errorf("Set did not replace b")
	}
}

func TestEqualNumbers(t *testing.T) {
	if !Equal(FromInt(1), FromFloat(1.0)) {
		t.Errorf("int 1 and float 1.0 should compare equal")
	}
	if Equal(FromInt(1), FromFloat(1.5)) {
		t.Errorf("int 1 and float 1.5 should differ")
	}
	if Equal(FromInt(1), FromString("1")) {
		t.Errorf("number and string should differ")
	}
}

func TestCompareRanks(t *testing.T) {
	// null < bool < number < string < array < object
	order := []*Node{
		Null(),
		FromBool(false),
		FromInt(0),
		FromString(""),
		FromSlice(nil),
		Object(),
	}
	for i := 0; i < len(order)-1; i++ {
		if Compare(order[i], order[i+1]) >= 0 {
			t.Errorf("rank %d should sort before rank %d", i, i+1)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Object().Set("xs", FromSlice([]*Node{FromInt(1)}))
	cp := orig.Clone()
	Get(cp, "xs").Values[0] = FromInt(9)
	if v := Get(orig, "xs").Values[0]; *v.Int64 != 1 {
		t.Errorf("clone shares array storage with original")
	}
	if !Equal(orig, orig.Clone()) {
		t.Errorf("clone should compare equal to original")
	}
}

func TestMarshalJSONOrder(t *testing.T) {
	obj := Object().
		Set("z", FromInt(1)).
		Set("a", FromString("two")).
		Set("m", FromBool(true)).
		Set("n", Null())
	d, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":"two","m":true,"n":null}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestToAny(t *testing.T) {
	node := Object().
		Set("name", FromString("demo")).
		Set("count", FromInt(3)).
		Set("ratio", FromFloat(0.5)).
		Set("tags", FromSlice([]*Node{FromString("a"), Null()}))
	want := map[string]any{
		"name":  "demo",
		"count": int64(3),
		"ratio": 0.5,
		"tags":  []any{"a", nil},
	}
	if diff := cmp.Diff(want, node.ToAny()); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if obj.Fields[0] != "a" || obj.Fields[1] != "b" {
		t.Errorf("FromMap order %v, want sorted", obj.Fields)
	}
}
