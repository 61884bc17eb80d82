// Package detect guesses the format of a block of text.
//
// Each supported format has an independent heuristic that scores the
// input from additive weighted signals: a filename extension, structural
// markers unique to the format, and a successful trial parse, which is
// the largest single boost. Scores are clamped to [0,1]. Only the first
// twenty or so lines are scanned, so cost is bounded regardless of input
// size. Ties resolve by the fixed priority order of format.AllFormats.
package detect
