package codec

import (
	"strings"
	"testing"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

func TestForCoversAllFormats(t *testing.T) {
	for _, f := range format.AllFormats() {
		if _, ok := For(f); !ok {
			t.Errorf("no codec for %s", f)
		}
	}
	if _, ok := For(format.UnknownFormat); ok {
		t.Errorf("unexpected codec for unknown format")
	}
}

func TestJSONOrderPreserved(t *testing.T) {
	c, _ := For(format.JSONFormat)
	in := `{"zebra": 1, "apple": {"nested": true}, "mango": [1, 2.5, null]}`
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, k := range want {
		if node.Fields[i] != k {
			t.Fatalf("field order %v, want %v", node.Fields, want)
		}
	}
	out, err := c.Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("JSON round trip changed value:\n%s", out)
	}
}

func TestJSONDecodeInvalid(t *testing.T) {
	c, _ := For(format.JSONFormat)
	if _, err := c.Decode([]byte(`{"x": `)); err == nil {
		t.Errorf("expected error")
	}
}

func TestCSVReviveTypes(t *testing.T) {
	c, _ := For(format.CSVFormat)
	in := "id,name,score,active,note,code\n1,Alice,9.5,true,,007\n2,Bob,8.0,false,null,X1"
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 2 {
		t.Fatalf("got %d rows", len(node.Values))
	}
	row := node.Values[0]
	if v := ir.Get(row, "id"); v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("id = %v", v)
	}
	if v := ir.Get(row, "score"); v.Float64 == nil || *v.Float64 != 9.5 {
		t.Errorf("score = %v", v)
	}
	if v := ir.Get(row, "active"); v.Type != ir.BoolType || !v.Bool {
		t.Errorf("active = %v", v)
	}
	if v := ir.Get(row, "note"); v.Type != ir.NullType {
		t.Errorf("empty cell = %v, want null", v)
	}
	// leading zero would be destroyed by integer revival
	if v := ir.Get(row, "code"); v.Type != ir.StringType || v.String != "007" {
		t.Errorf("code = %v, want string 007", v)
	}
	if v := ir.Get(node.Values[1], "note"); v.Type != ir.NullType {
		t.Errorf("null cell = %v", v)
	}
}

func TestCSVEmbeddedJSON(t *testing.T) {
	c, _ := For(format.CSVFormat)
	in := "id,meta\n" + `1,"{""k"": [1,2]}"`
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	meta := ir.Get(node.Values[0], "meta")
	if meta == nil || meta.Type != ir.ObjectType {
		t.Fatalf("meta = %v", meta)
	}
	ks := ir.Get(meta, "k")
	if ks == nil || len(ks.Values) != 2 {
		t.Errorf("meta.k = %v", ks)
	}
}

func TestTSVAndPipeRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.TSVFormat, format.PipeFormat} {
		c, _ := For(f)
		node := ir.FromSlice([]*ir.Node{
			ir.Object().Set("a", ir.FromInt(1)).Set("b", ir.FromString("x")),
			ir.Object().Set("a", ir.FromInt(2)).Set("b", ir.FromString("y")),
		})
		out, err := c.Encode(node)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		d, _ := f.Delimited()
		if !strings.Contains(string(out), d) {
			t.Errorf("%s output lacks delimiter: %q", f, out)
		}
		back, err := c.Decode(out)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("%s round trip changed value:\n%s", f, out)
		}
	}
}

func TestYAMLOrderPreserved(t *testing.T) {
	c, _ := For(format.YAMLFormat)
	in := "zebra: 1\napple:\n  nested: true\nmango:\n  - 1\n  - two"
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, k := range want {
		if node.Fields[i] != k {
			t.Fatalf("field order %v, want %v", node.Fields, want)
		}
	}
	out, err := c.Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("YAML round trip changed value:\n%s", out)
	}
}

func TestXMLDecode(t *testing.T) {
	c, _ := For(format.XMLFormat)
	in := `<config env="prod"><debug>false</debug><host>a</host><host>b</host></config>`
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	attrs := ir.Get(node, "@attributes")
	if v := ir.Get(attrs, "env"); v == nil || v.String != "prod" {
		t.Errorf("env attr = %v", v)
	}
	if v := ir.Get(node, "debug"); v == nil || ir.Get(v, "@text").String != "false" {
		t.Errorf("debug = %v", v)
	}
	hosts := ir.Get(node, "host")
	if hosts == nil || hosts.Type != ir.ArrayType || len(hosts.Values) != 2 {
		t.Errorf("repeated tags should collapse to an array, got %v", hosts)
	}
}

func TestINIRoundTrip(t *testing.T) {
	c, _ := For(format.INIFormat)
	in := "top = 1\n\n[server]\nhost = localhost\nport = 8080\n"
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "top"); v == nil || v.String != "1" {
		t.Errorf("top = %v", v)
	}
	server := ir.Get(node, "server")
	if v := ir.Get(server, "host"); v == nil || v.String != "localhost" {
		t.Errorf("host = %v", v)
	}
	out, err := c.Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("INI round trip changed value:\n%s", out)
	}
}

func TestKeyValueDecode(t *testing.T) {
	c, _ := For(format.KeyValueFormat)
	in := "# comment\nname=demo\nempty=\nskipped line\n"
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "name"); v == nil || v.String != "demo" {
		t.Errorf("name = %v", v)
	}
	if v := ir.Get(node, "empty"); v == nil || v.String != "" {
		t.Errorf("empty = %v", v)
	}
	if len(node.Fields) != 2 {
		t.Errorf("fields = %v", node.Fields)
	}
}

func TestPropertiesDecode(t *testing.T) {
	c, _ := For(format.PropertiesFormat)
	in := "app.name=demo\napp.title: Demo App\n! ignored\n"
	node, err := c.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "app.name"); v == nil || v.String != "demo" {
		t.Errorf("app.name = %v", v)
	}
	if v := ir.Get(node, "app.title"); v == nil || v.String != "Demo App" {
		t.Errorf("app.title = %v", v)
	}
}

func TestTOONCodecRoundTrip(t *testing.T) {
	c, _ := For(format.TOONFormat)
	node := ir.Object().
		Set("name", ir.FromString("demo")).
		Set("xs", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))
	out, err := c.Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("round trip changed value:\n%s", out)
	}
}
