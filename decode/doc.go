// Package decode parses TOON text into ir nodes.
//
// The grammar is line-oriented: two-space indentation opens nested
// objects, '#' starts a comment, and arrays declare their length up
// front in one of three shapes (tabular, inline, hyphen list). The
// delimiter inside an array is sniffed per array, so comma, tab and
// pipe documents all decode without configuration.
//
// Decoding is forgiving by default: length and field-count violations
// become warnings, and a document that will not parse at all degrades
// to a flat scan of its top-level key-value pairs. Strict mode turns
// every violation into an error.
package decode
