// Package encode renders ir nodes as TOON text.
//
// Arrays pick the most compact form available: a tabular block when every
// item is a flat object over the same key set, a single inline line when
// every item is a primitive, and a hyphen list otherwise. Strings are
// quoted only when leaving them bare would change how they read back.
package encode
