package decode

import (
	"errors"
	"strings"
	"testing"

	"github.com/varchiver/toon-format/go-toon/encode"
	"github.com/varchiver/toon-format/go-toon/ir"
)

const detectionExample = `users[3]{id,name,role}:
  1,Alice,admin
  2,Bob,user
  3,Charlie,user
config:
  debug: false`

func TestDecodeTabular(t *testing.T) {
	res, err := Decode([]byte(detectionExample))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
	users := ir.Get(res.Node, "users")
	if users == nil || users.Type != ir.ArrayType || len(users.Values) != 3 {
		t.Fatalf("users = %v", users)
	}
	first := users.Values[0]
	if v := ir.Get(first, "id"); v == nil || *v.Int64 != 1 {
		t.Errorf("id = %v", v)
	}
	if v := ir.Get(first, "name"); v == nil || v.String != "Alice" {
		t.Errorf("name = %v", v)
	}
	cfg := ir.Get(res.Node, "config")
	if v := ir.Get(cfg, "debug"); v == nil || v.Bool {
		t.Errorf("config.debug = %v", v)
	}
	if got := res.Meta.ArrayItems["users"]; got != 3 {
		t.Errorf("array items = %d, want 3", got)
	}
	wantKinds := []string{"tabular_array", "key_value"}
	for _, k := range wantKinds {
		found := false
		for _, s := range res.Meta.Structures {
			if s == k {
				found = true
			}
		}
		if !found {
			t.Errorf("missing structure kind %q in %v", k, res.Meta.Structures)
		}
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	in := "xs[3]: 1,2\n"

	_, err := Decode([]byte(in), Strict(true))
	if !errors.Is(err, ErrArrayLengthMismatch) {
		t.Errorf("strict: got %v, want ErrArrayLengthMismatch", err)
	}

	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("recovery warnings = %v, want one", res.Warnings)
	}
	xs := ir.Get(res.Node, "xs")
	if len(xs.Values) != 2 {
		t.Errorf("recovery kept %d items, want 2", len(xs.Values))
	}
}

func TestDecodeFieldCountMismatch(t *testing.T) {
	in := `rows[2]{a,b,c}:
  1,2
  1,2,3,4`

	_, err := Decode([]byte(in), Strict(true))
	if !errors.Is(err, ErrFieldCountMismatch) {
		t.Errorf("strict: got %v, want ErrFieldCountMismatch", err)
	}

	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	// one warning per bad row
	if len(res.Warnings) != 2 {
		t.Errorf("warnings = %v, want two", res.Warnings)
	}
	rows := ir.Get(res.Node, "rows")
	if len(rows.Values) != 2 {
		t.Fatalf("kept %d rows", len(rows.Values))
	}
	// short row padded with null
	if v := ir.Get(rows.Values[0], "c"); v == nil || v.Type != ir.NullType {
		t.Errorf("short row c = %v, want null", v)
	}
	// long row truncated to declared fields
	if got := len(rows.Values[1].Fields); got != 3 {
		t.Errorf("long row kept %d fields, want 3", got)
	}
}

func TestDecodeMultilineSimpleArray(t *testing.T) {
	in := `nums[3]:
  1
  2
  3`
	res, err := Decode([]byte(in), Strict(true))
	if err != nil {
		t.Fatal(err)
	}
	nums := ir.Get(res.Node, "nums")
	if nums == nil || nums.Type != ir.ArrayType || len(nums.Values) != 3 {
		t.Fatalf("nums = %v", nums)
	}
	for i, want := range []int64{1, 2, 3} {
		if v := nums.Values[i]; v.Int64 == nil || *v.Int64 != want {
			t.Errorf("nums[%d] = %v, want %d", i, v, want)
		}
	}
	if got := res.Meta.ArrayItems["nums"]; got != 3 {
		t.Errorf("array items = %d, want 3", got)
	}
}

func TestDecodeMultilineSimpleArrayMixed(t *testing.T) {
	in := `vals[4]:
  text
  true
  2.5
  null`
	res, err := Decode([]byte(in), Strict(true))
	if err != nil {
		t.Fatal(err)
	}
	vals := ir.Get(res.Node, "vals")
	if len(vals.Values) != 4 {
		t.Fatalf("got %d values", len(vals.Values))
	}
	if v := vals.Values[0]; v.Type != ir.StringType || v.String != "text" {
		t.Errorf("vals[0] = %v", v)
	}
	if v := vals.Values[1]; v.Type != ir.BoolType || !v.Bool {
		t.Errorf("vals[1] = %v", v)
	}
	if v := vals.Values[2]; v.Float64 == nil || *v.Float64 != 2.5 {
		t.Errorf("vals[2] = %v", v)
	}
	if v := vals.Values[3]; v.Type != ir.NullType {
		t.Errorf("vals[3] = %v", v)
	}
}

func TestDecodeListForm(t *testing.T) {
	in := `projects[2]:
  - name: Project A
    status: active
  - name: Project B
    status: inactive`
	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	ps := ir.Get(res.Node, "projects")
	if len(ps.Values) != 2 {
		t.Fatalf("got %d items", len(ps.Values))
	}
	if v := ir.Get(ps.Values[1], "status"); v == nil || v.String != "inactive" {
		t.Errorf("second status = %v", v)
	}
}

func TestDecodeNestedListItems(t *testing.T) {
	in := `nested[2]:
  - name: Project A
    contributors[2]{name,role}:
      Alice,Lead
      Bob,Developer
  - name: Project B
    contributors[1]{name,role}:
      Carol,Tester`
	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	items := ir.Get(res.Node, "nested")
	if len(items.Values) != 2 {
		t.Fatalf("got %d items", len(items.Values))
	}
	cs := ir.Get(items.Values[0], "contributors")
	if cs == nil || len(cs.Values) != 2 {
		t.Fatalf("contributors = %v", cs)
	}
	if v := ir.Get(cs.Values[1], "role"); v == nil || v.String != "Developer" {
		t.Errorf("role = %v", v)
	}
}

func TestDecodeComments(t *testing.T) {
	in := `# leading comment
key: value

# another
xs[2]: 1,2`
	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(res.Node, "key"); v == nil || v.String != "value" {
		t.Errorf("key = %v", v)
	}
	if res.Meta.LineCount != 5 {
		t.Errorf("line count = %d, want 5", res.Meta.LineCount)
	}
}

func TestDecodeDelimiterSniffing(t *testing.T) {
	for _, in := range []string{
		"rows[2]{a,b}:\n  1,x\n  2,y",
		"rows[2\t]{a\tb}:\n  1\tx\n  2\ty",
		"rows[2]{a|b}:\n  1|x\n  2|y",
		// comma-separated header over tab rows: the data decides
		"rows[2]{a,b}:\n  1\tx\n  2\ty",
	} {
		res, err := Decode([]byte(in), Strict(true))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		rows := ir.Get(res.Node, "rows")
		if len(rows.Values) != 2 {
			t.Errorf("%q: got %d rows", in, len(rows.Values))
			continue
		}
		if v := ir.Get(rows.Values[1], "b"); v == nil || v.String != "y" {
			t.Errorf("%q: b = %v", in, v)
		}
	}
}

func TestDecodeLengthMarker(t *testing.T) {
	res, err := Decode([]byte("xs[#3]: 1,2,3"))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(ir.Get(res.Node, "xs").Values); got != 3 {
		t.Errorf("got %d items", got)
	}
}

func TestDecodeQuotedValues(t *testing.T) {
	in := `literal: "true"
digits: "123"
listing[1]: "a,b"`
	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(res.Node, "literal"); v.Type != ir.StringType || v.String != "true" {
		t.Errorf("literal = %v", v)
	}
	if v := ir.Get(res.Node, "digits"); v.Type != ir.StringType || v.String != "123" {
		t.Errorf("digits = %v", v)
	}
	xs := ir.Get(res.Node, "listing")
	if len(xs.Values) != 1 || xs.Values[0].String != "a,b" {
		t.Errorf("listing = %v", xs)
	}
}

func TestDecodeFlatScanFallback(t *testing.T) {
	// every line is mis-indented, so structural parsing rejects the
	// whole document; the salvage pass still finds the pairs
	in := "  name: box\n  version: 2"
	res, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Meta.Partial {
		t.Fatalf("expected partial result, got %v", res.Node)
	}
	if v := ir.Get(res.Node, "name"); v == nil || v.String != "box" {
		t.Errorf("name = %v", v)
	}
	if len(res.Warnings) == 0 {
		t.Errorf("expected warnings")
	}
}

func TestDecodeStrictRejectsGarbage(t *testing.T) {
	in := "no colon here\nstill none"
	if _, err := Decode([]byte(in), Strict(true)); err == nil {
		t.Errorf("expected error")
	}
}

func TestDecodeScalarDocument(t *testing.T) {
	res, err := Decode([]byte("42\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res.Node, ir.FromInt(42)) {
		t.Errorf("got %v, want 42", res.Node)
	}
}

type roundTrip struct {
	name string
	node *ir.Node
}

func TestRoundTrip(t *testing.T) {
	rts := []roundTrip{
		{
			name: "tabular",
			node: ir.Object().Set("users", ir.FromSlice([]*ir.Node{
				ir.Object().Set("id", ir.FromInt(1)).Set("name", ir.FromString("Alice")),
				ir.Object().Set("id", ir.FromInt(2)).Set("name", ir.FromString("Bob")),
			})),
		},
		{
			name: "inline",
			node: ir.Object().Set("xs", ir.FromSlice([]*ir.Node{
				ir.FromInt(1), ir.FromString("two"), ir.FromBool(true), ir.Null(),
			})),
		},
		{
			name: "list",
			node: ir.Object().Set("items", ir.FromSlice([]*ir.Node{
				ir.Object().
					Set("name", ir.FromString("deep")).
					Set("inner", ir.Object().Set("k", ir.FromInt(1))),
				ir.FromString("flat"),
				ir.Object(),
			})),
		},
		{
			name: "empty array",
			node: ir.Object().Set("none", ir.FromSlice(nil)),
		},
		{
			name: "nested objects",
			node: ir.Object().Set("a", ir.Object().
				Set("b", ir.Object().Set("c", ir.FromString("deep"))).
				Set("d", ir.FromFloat(1.5))),
		},
		{
			name: "quoting hazards",
			node: ir.Object().
				Set("t", ir.FromString("true")).
				Set("n", ir.FromString("123")).
				Set("c", ir.FromString("a,b")).
				Set("q", ir.FromString(`say "hi"`)).
				Set("nl", ir.FromString("two\nlines")),
		},
		{
			name: "root array of objects",
			node: ir.FromSlice([]*ir.Node{
				ir.Object().Set("k", ir.FromString("v")),
				ir.Object().Set("k", ir.FromString("w")),
			}),
		},
	}
	for _, rt := range rts {
		s, err := encode.String(rt.node)
		if err != nil {
			t.Errorf("%s: encode: %v", rt.name, err)
			continue
		}
		res, err := Decode([]byte(s))
		if err != nil {
			t.Errorf("%s: decode: %v\n%s", rt.name, err, s)
			continue
		}
		if len(res.Warnings) != 0 {
			t.Errorf("%s: warnings %v\n%s", rt.name, res.Warnings, s)
		}
		if !ir.Equal(rt.node, res.Node) {
			t.Errorf("%s: round trip changed value\nencoded:\n%s", rt.name, s)
		}
	}
}

func TestRoundTripWithOptions(t *testing.T) {
	node := ir.Object().Set("rows", ir.FromSlice([]*ir.Node{
		ir.Object().Set("a", ir.FromInt(1)).Set("b", ir.FromString("x,y")),
		ir.Object().Set("a", ir.FromInt(2)).Set("b", ir.FromString("z")),
	}))
	s, err := encode.String(node, encode.Delimiter("\t"), encode.LengthMarker(true))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "[#2\t]") {
		t.Fatalf("unexpected header in %q", s)
	}
	res, err := Decode([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, res.Node) {
		t.Errorf("round trip changed value\nencoded:\n%s", s)
	}
}

func TestRoundTripFloats(t *testing.T) {
	node := ir.Object().
		Set("big", ir.FromFloat(1e21)).
		Set("whole", ir.FromFloat(123)).
		Set("zero", ir.FromFloat(0))
	s, err := encode.String(node)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Decode([]byte(s), Strict(true))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range node.Fields {
		v := ir.Get(res.Node, k)
		if v == nil || v.Float64 == nil {
			t.Errorf("%s decoded as %v, want a float\nencoded:\n%s", k, v, s)
			continue
		}
		if *v.Float64 != *ir.Get(node, k).Float64 {
			t.Errorf("%s = %v\nencoded:\n%s", k, *v.Float64, s)
		}
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	res, err := Decode([]byte("   \n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Node.Type != ir.ObjectType || len(res.Node.Fields) != 0 {
		t.Errorf("got %v, want empty object", res.Node)
	}
}
