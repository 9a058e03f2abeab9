// Package log provides structured protocol event logging for the HLX
// control-plane stack.
//
// Events are captured at every layer (transport framing, wire payloads,
// service state changes) and encoded as a compact CBOR stream with
// integer keys. The same stream format is used for on-disk capture
// (FileLogger, optionally rotated) and later replay (Reader).
//
// Applications that want human-readable output wire a SlogAdapter in
// front of (or alongside, via MultiLogger) the file sink.
package log
