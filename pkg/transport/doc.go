// Package transport implements the TCP layer of the HLX control
// protocol: the client connection with its confirmation handshake and
// state machine, the server with its accept loop and broadcast, and
// the per-scheme connection identifier manager.
//
// # Connection states
//
// Both sides share one state set. A connection starts CONNECTED when
// the socket is up, becomes CONFIRMED when the greeting line has been
// exchanged, then READY. A client submitting a request moves to
// AWAITING_RESPONSE until the exchange completes. Any socket error or
// peer close ends in CLOSED.
//
// # Confirmation handshake
//
// On accept the server claims the lowest free connection identifier
// for the scheme and writes "telnet_client_<id>: connected" followed
// by CRLF, unframed, as the first bytes on the connection. The client
// must match this line before submitting requests. Identifiers are
// reused after release, smallest first.
package transport
