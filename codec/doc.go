// Package codec converts between wire formats and ir nodes.
//
// Every format gets one Codec; the facade and converter dispatch through
// the fixed registry in All rather than switching on an enum. TOON and
// JSON preserve object field order exactly; the delimited codecs revive
// typed values from cell text on the way in and flatten to cell text on
// the way out.
package codec
