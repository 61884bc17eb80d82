// Package ir provides the intermediate representation shared by the TOON
// codec, the fallback codecs, and the converter.
//
// # Node Structure
//
// A Node represents a single value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (ordered key-value pairs), array
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.Object().
//	    Set("key", ir.FromString("value"))
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Keys appear at most once and
// their order is significant: the TOON encoder derives tabular header field
// order from it, and round-tripping preserves it.
//
// NumberType nodes hold either Int64 or Float64, never both. The decoder
// produces Int64 for integer literals and Float64 when the literal carries
// a fractional part or an exponent.
package ir
