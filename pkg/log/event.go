package log

import (
	"time"
)

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the connection for correlation (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// LocalRole indicates whether the local endpoint is the client or
	// the server of the control connection.
	LocalRole Role `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the peer address (IP:port).
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// PeerID is the wire-visible connection identifier handed out by the
	// server greeting ("telnet_client_<n>"); zero until confirmed.
	PeerID uint `cbor:"8,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // Transport layer (raw bytes)
	Payload     *PayloadEvent     `cbor:"11,keyasint,omitempty"` // Wire layer (framed payload)
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Connection/exchange state
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerTransport is the framing layer (raw bytes, telnet negotiation).
	LayerTransport Layer = 0
	// LayerWire is the payload layer (delimited request/response lines).
	LayerWire Layer = 1
	// LayerService is the application/controller layer.
	LayerService Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerService:
		return "SERVICE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a protocol message (request/response/notification).
	CategoryMessage Category = 0
	// CategoryHandshake indicates greeting/confirmation traffic.
	CategoryHandshake Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryHandshake:
		return "HANDSHAKE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Role indicates whether the local endpoint is the client or the server.
type Role uint8

const (
	// RoleServer indicates the local endpoint accepted the connection.
	RoleServer Role = 0
	// RoleClient indicates the local endpoint dialed the connection.
	RoleClient Role = 1
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleServer:
		return "SERVER"
	case RoleClient:
		return "CLIENT"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw byte traffic at the transport layer.
type FrameEvent struct {
	// Size is the number of raw bytes on the wire.
	Size int `cbor:"1,keyasint"`

	// Data is the raw bytes (may be truncated for large reads).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// PayloadEvent captures a framed payload at the wire layer.
type PayloadEvent struct {
	// Role distinguishes request ([...]) from response ((...)) payloads.
	Role PayloadRole `cbor:"1,keyasint"`

	// Line is the payload text without delimiters.
	Line string `cbor:"2,keyasint"`

	// Matched is the name of the registered pattern that matched the
	// payload, if any ("" when unmatched or not yet dispatched).
	Matched string `cbor:"3,keyasint,omitempty"`
}

// PayloadRole distinguishes the two framed payload kinds.
type PayloadRole uint8

const (
	// PayloadRequest is a command request ([...] framing).
	PayloadRequest PayloadRole = 0
	// PayloadResponse is a response or notification ((...) framing).
	PayloadResponse PayloadRole = 1
)

// String returns the payload role name.
func (r PayloadRole) String() string {
	switch r {
	case PayloadRequest:
		return "REQUEST"
	case PayloadResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a connection or exchange state transition.
type StateChangeEvent struct {
	// Entity identifies what changed state.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state name ("" when unknown).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state name.
	NewState string `cbor:"3,keyasint"`

	// Reason is an optional human-readable cause.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity identifies the entity whose state changed.
type StateEntity uint8

const (
	// StateEntityConnection is the per-connection state machine.
	StateEntityConnection StateEntity = 0
	// StateEntityExchange is a client-side request/response exchange.
	StateEntityExchange StateEntity = 1
	// StateEntityService is the application service lifecycle.
	StateEntityService StateEntity = 2
)

// String returns the state entity name.
func (e StateEntity) String() string {
	switch e {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntityExchange:
		return "EXCHANGE"
	case StateEntityService:
		return "SERVICE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`

	// Context is optional additional context (e.g. the offending payload).
	Context string `cbor:"3,keyasint,omitempty"`
}
