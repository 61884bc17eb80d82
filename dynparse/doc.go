// Package dynparse is the parse-anything facade: detect the format of a
// block of text, dispatch to the right codec, and fold the outcome into
// one ParseResult carrying data, metadata, warnings, errors and timing.
package dynparse
