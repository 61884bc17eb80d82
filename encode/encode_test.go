package encode

import (
	"testing"

	"github.com/varchiver/toon-format/go-toon/ir"
)

func user(id int64, name, email string, active bool) *ir.Node {
	return ir.Object().
		Set("id", ir.FromInt(id)).
		Set("name", ir.FromString(name)).
		Set("email", ir.FromString(email)).
		Set("active", ir.FromBool(active))
}

func TestEncodeTabular(t *testing.T) {
	node := ir.Object().Set("users", ir.FromSlice([]*ir.Node{
		user(1, "Alice", "alice@test.com", true),
		user(2, "Bob", "bob@test.com", false),
		user(3, "Carol", "carol@test.com", true),
	}))
	want := `users[3]{id,name,email,active}:
  1,Alice,alice@test.com,true
  2,Bob,bob@test.com,false
  3,Carol,carol@test.com,true`
	if got := MustString(node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeInline(t *testing.T) {
	node := ir.Object().Set("features", ir.FromSlice([]*ir.Node{
		ir.FromString("archive"),
		ir.FromString("extract"),
		ir.FromString("browse"),
	}))
	want := `features[3]: archive,extract,browse`
	if got := MustString(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeList(t *testing.T) {
	node := ir.Object().Set("projects", ir.FromSlice([]*ir.Node{
		ir.Object().
			Set("name", ir.FromString("Project A")).
			Set("meta", ir.Object().Set("stars", ir.FromInt(4))),
		ir.FromString("placeholder"),
	}))
	want := `projects[2]:
  - name: Project A
    meta:
      stars: 4
  - placeholder`
	if got := MustString(node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmptyAndNull(t *testing.T) {
	node := ir.Object().
		Set("empty", ir.FromSlice(nil)).
		Set("nothing", ir.Null()).
		Set("blank", ir.Object())
	want := `empty[0]:
nothing: null
blank:`
	if got := MustString(node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeQuoting(t *testing.T) {
	node := ir.Object().
		Set("literal", ir.FromString("true")).
		Set("digits", ir.FromString("123")).
		Set("listing", ir.FromString("a,b")).
		Set("plain", ir.FromString("hello world"))
	want := `literal: "true"
digits: "123"
listing: "a,b"
plain: hello world`
	if got := MustString(node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeLengthMarker(t *testing.T) {
	node := ir.Object().Set("xs", ir.FromSlice([]*ir.Node{
		ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
	}))
	want := `xs[#3]: 1,2,3`
	if got := MustString(node, LengthMarker(true)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDelimiter(t *testing.T) {
	node := ir.Object().Set("rows", ir.FromSlice([]*ir.Node{
		ir.Object().Set("a", ir.FromInt(1)).Set("b", ir.FromString("x,y")),
		ir.Object().Set("a", ir.FromInt(2)).Set("b", ir.FromString("z")),
	}))
	want := "rows[2\t]{a\tb}:\n  1\tx,y\n  2\tz"
	if got := MustString(node, Delimiter("\t")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeFloats(t *testing.T) {
	node := ir.Object().
		Set("zero", ir.FromFloat(0)).
		Set("pi", ir.FromFloat(3.14)).
		Set("whole", ir.FromFloat(123)).
		Set("big", ir.FromFloat(1e21))
	want := `zero: 0.0
pi: 3.14
whole: 123.0
big: 1e+21`
	if got := MustString(node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeRootArray(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	if got := MustString(node); got != "[2]: 1,2" {
		t.Errorf("got %q", got)
	}
}
