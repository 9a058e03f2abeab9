package transport

import "errors"

// ConnectionState is the per-connection state machine position.
type ConnectionState int32

const (
	// StateDisconnected indicates no socket.
	StateDisconnected ConnectionState = iota

	// StateConnected indicates the socket is up and the confirmation
	// line has not been exchanged yet.
	StateConnected

	// StateConfirmed indicates the confirmation line was exchanged.
	StateConfirmed

	// StateReady indicates the connection accepts a request submit.
	StateReady

	// StateAwaitingResponse indicates a request is outstanding.
	StateAwaitingResponse

	// StateClosed indicates the connection ended.
	StateClosed
)

// String returns the connection state name.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnected:
		return "CONNECTED"
	case StateConfirmed:
		return "CONFIRMED"
	case StateReady:
		return "READY"
	case StateAwaitingResponse:
		return "AWAITING_RESPONSE"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Connection errors.
var (
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
	ErrConnectionClosed = errors.New("connection closed")
	ErrNotReady         = errors.New("connection not ready")
	ErrHandshakeFailed  = errors.New("confirmation handshake failed")
)
