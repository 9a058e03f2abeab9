package interaction

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// Command manager errors.
var (
	// ErrDuplicateRegistration is returned when a request pattern is
	// registered twice.
	ErrDuplicateRegistration = errors.New("request pattern already registered")
)

// Responder is the per-connection surface handlers answer on. It is
// implemented by *transport.ServerConn.
type Responder interface {
	// SendResponse frames and writes a response payload to this
	// client only.
	SendResponse(payload string) error

	// ID returns the wire-visible connection identifier.
	ID() int
}

// Handler processes one dispatched request. It synthesises zero or
// more response lines through the responder or the manager's
// broadcast. Returning an error sends the error response to the
// initiating connection.
type Handler func(conn Responder, payload string, match *wire.Match) error

// CommandManager dispatches inbound request payloads to registered
// handlers, first match in registration order. A payload with no
// matching registration is answered with the error response.
type CommandManager struct {
	mu       sync.RWMutex
	table    *wire.Table
	handlers map[wire.PatternID]Handler

	broadcast func(payload string)
}

// NewCommandManager creates a command manager. broadcast sends a
// response payload to every connected client; mutation handlers use it
// so all observers see the new state.
func NewCommandManager(broadcast func(payload string)) *CommandManager {
	return &CommandManager{
		table:     wire.NewTable(),
		handlers:  make(map[wire.PatternID]Handler),
		broadcast: broadcast,
	}
}

// Register adds a request form and its handler. Registering the same
// pattern twice is an error.
func (m *CommandManager) Register(form command.Form, handler Handler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := m.table.Register(wire.RoleRequest, form.Expr, form.Captures)
	if err != nil {
		if errors.Is(err, wire.ErrDuplicatePattern) {
			return fmt.Errorf("%w: %q", ErrDuplicateRegistration, form.Expr)
		}
		return err
	}
	m.handlers[id] = handler
	return nil
}

// MustRegister is Register, panicking on error. Controllers register
// fixed forms at startup, so a failure is a programming error.
func (m *CommandManager) MustRegister(form command.Form, handler Handler) {
	if err := m.Register(form, handler); err != nil {
		panic(err)
	}
}

// Broadcast sends a response payload to every connected client.
func (m *CommandManager) Broadcast(payload string) {
	m.broadcast(payload)
}

// Dispatch finds the first matching registration for payload and
// invokes its handler. No match, or a handler error, answers the
// initiating connection with the error response.
func (m *CommandManager) Dispatch(conn Responder, payload string) {
	m.mu.RLock()
	match, ok := m.table.Lookup(wire.RoleRequest, payload)
	var handler Handler
	if ok {
		handler = m.handlers[match.Pattern]
	}
	m.mu.RUnlock()

	if handler == nil {
		conn.SendResponse(wire.ErrorPayload)
		return
	}
	if err := handler(conn, payload, match); err != nil {
		conn.SendResponse(wire.ErrorPayload)
	}
}
