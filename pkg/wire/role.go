package wire

import "fmt"

// Role identifies the direction a payload travels in, and with it the
// delimiter pair that frames it on the wire.
type Role uint8

const (
	// RoleRequest is a controller-to-server message, framed [payload].
	RoleRequest Role = iota
	// RoleResponse is a server-to-controller message, framed (payload).
	// Solicited responses and unsolicited notifications share this role.
	RoleResponse
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleRequest:
		return "REQUEST"
	case RoleResponse:
		return "RESPONSE"
	default:
		return fmt.Sprintf("ROLE(%d)", uint8(r))
	}
}

// ErrorPayload is the payload the server emits when a request cannot be
// dispatched or a handler fails.
const ErrorPayload = "ERROR"

// Frame is one framed message: the payload between the delimiters and
// the role the delimiters imply.
type Frame struct {
	Role    Role
	Payload string
}

// AppendRequest appends payload framed as a request, with the trailing
// line ending, to dst.
func AppendRequest(dst []byte, payload string) []byte {
	dst = append(dst, '[')
	dst = append(dst, payload...)
	return append(dst, ']', '\r', '\n')
}

// AppendResponse appends payload framed as a response, with the
// trailing line ending, to dst.
func AppendResponse(dst []byte, payload string) []byte {
	dst = append(dst, '(')
	dst = append(dst, payload...)
	return append(dst, ')', '\r', '\n')
}

// AppendFrame appends payload framed for the given role to dst.
func AppendFrame(dst []byte, role Role, payload string) []byte {
	if role == RoleRequest {
		return AppendRequest(dst, payload)
	}
	return AppendResponse(dst, payload)
}
