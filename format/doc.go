// Package format enumerates the data formats the module can detect and
// parse, and fixes the priority order used to break detection ties.
//
// # Usage
//
//	f, err := format.ParseFormat("toon")
//	ext := f.Suffix() // ".toon"
//
// # Related Packages
//
//   - github.com/varchiver/toon-format/go-toon/detect - format detection
//   - github.com/varchiver/toon-format/go-toon/codec - per-format codecs
package format
