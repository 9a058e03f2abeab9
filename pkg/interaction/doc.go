// Package interaction implements the request/response layer on both
// sides of an HLX connection.
//
// The client side is the exchange manager: exactly one request is
// outstanding per connection, further submits queue in FIFO order, and
// an exchange completes when the pending request's response form or
// the error response matches, when its timer expires, or when the
// connection goes away. Inbound payloads matching any other registered
// form are delivered as unsolicited notifications and never satisfy
// the pending request.
//
// The server side is the command manager: a registration-ordered
// dispatch of request patterns to handlers. A payload with no matching
// registration, or a handler failure, is answered with the error
// response on the initiating connection.
package interaction
