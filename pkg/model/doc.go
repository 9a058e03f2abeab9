// Package model implements the HLX data model: zones, groups, sources,
// equalizer presets, favorites, the front panel, infrared, and network
// state, all owned by a single Repository for the process lifetime.
//
// Every scalar field starts in a distinct not-initialised state. Reads
// of such fields return StatusNotInitialised. Writes that match the
// current value return StatusAlreadySet, which is a sentinel rather
// than an error: controllers use it to suppress notifications and
// persistence dirty-marking. All mutators are total functions that
// report a Status; there is no panic-style control flow.
//
// Identifier validation happens before value validation, and all
// identifiers are 1-based: identifier 0 is always out of range.
package model
