// Package wire implements the byte-level layer of the HLX control
// protocol: message framing, the telnet option filter, and the regular
// expression dispatch table.
//
// # Framing
//
// A connection stream carries two interleaved message kinds,
// distinguished by their delimiter pair:
//
//   - Request:  [payload]\r\n
//   - Response: (payload)\r\n
//
// The framer strips the delimiters and tags each payload with its role.
// Bytes between a frame and the next start delimiter are discarded, so
// trailing line endings and line noise never reach the upper layers.
//
// # Telnet filter
//
// The filter sits below framing. It consumes IAC option negotiation,
// answers every WILL with DONT and every DO with WONT, and passes the
// remaining data bytes through. Framed payloads therefore contain no
// IAC bytes.
//
// # Dispatch table
//
// Registered patterns are POSIX ERE strings compiled once, each with a
// declared capture count. A lookup returns the first registered pattern
// whose match covers the entire payload, along with the byte offsets of
// every capture group.
package wire
