// Package token implements the scalar micro-grammar shared by the TOON
// decoder and encoder: primitive parsing, quoting, unquoting, and the
// identifier rule for unquoted object keys.
package token
