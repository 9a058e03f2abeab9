package transport

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hlx-protocol/hlx-go/pkg/log"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// ConnectionConfig configures a client connection.
type ConnectionConfig struct {
	// Scheme is the URL scheme the confirmation line must carry
	// (default: telnet).
	Scheme string

	// HandshakeTimeout bounds the wait for the confirmation line
	// (default: 10s).
	HandshakeTimeout time.Duration

	// ReadBufferSize is the socket read chunk size (default: 4096).
	ReadBufferSize int

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// DefaultConnectionConfig returns the default connection configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		Scheme:           wire.DefaultScheme,
		HandshakeTimeout: 10 * time.Second,
		ReadBufferSize:   4096,
	}
}

// ConnectionHandler handles connection events. Callbacks run on the
// connection's read goroutine and must not block.
type ConnectionHandler interface {
	// OnFrame is called for every framed payload received after
	// confirmation.
	OnFrame(frame wire.Frame)

	// OnStateChange is called when the connection state changes.
	OnStateChange(oldState, newState ConnectionState)

	// OnError is called when an error occurs. Read errors also close
	// the connection.
	OnError(err error)
}

// Connection is the client side of an HLX control connection.
type Connection struct {
	config  ConnectionConfig
	handler ConnectionHandler

	mu      sync.RWMutex
	conn    net.Conn
	writeMu sync.Mutex

	state  atomic.Int32
	peerID atomic.Int64
	connID string

	filter wire.TelnetFilter
	framer *wire.Framer

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection (not yet connected).
func NewConnection(config ConnectionConfig, handler ConnectionHandler) *Connection {
	if config.Scheme == "" {
		config.Scheme = wire.DefaultScheme
	}
	if config.HandshakeTimeout == 0 {
		config.HandshakeTimeout = 10 * time.Second
	}
	if config.ReadBufferSize == 0 {
		config.ReadBufferSize = 4096
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}

	c := &Connection{
		config:  config,
		handler: handler,
		connID:  uuid.New().String(),
		framer:  wire.NewFramer(),
	}
	c.state.Store(int32(StateDisconnected))
	return c
}

// State returns the current connection state.
func (c *Connection) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// PeerID returns the identifier the server assigned in its greeting,
// or 0 before confirmation.
func (c *Connection) PeerID() int {
	return int(c.peerID.Load())
}

// ConnID returns the local log correlation identifier.
func (c *Connection) ConnID() string {
	return c.connID
}

// Connect dials the address and runs the confirmation handshake. On
// return the connection is READY and the read loop is running.
func (c *Connection) Connect(ctx context.Context, address string) error {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}
	if err := c.Attach(ctx, conn); err != nil {
		conn.Close()
		return err
	}
	return nil
}

// Attach adopts an established socket, runs the confirmation handshake
// and starts the read loop. Used by Connect and by tests driving an
// in-memory pipe.
func (c *Connection) Attach(ctx context.Context, conn net.Conn) error {
	if !c.state.CompareAndSwap(int32(StateDisconnected), int32(StateConnected)) {
		return ErrAlreadyConnected
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.notifyStateChange(StateDisconnected, StateConnected)

	rest, err := c.awaitGreeting(conn)
	if err != nil {
		c.state.Store(int32(StateClosed))
		c.notifyStateChange(StateConnected, StateClosed)
		return err
	}

	c.state.Store(int32(StateConfirmed))
	c.notifyStateChange(StateConnected, StateConfirmed)
	c.state.Store(int32(StateReady))
	c.notifyStateChange(StateConfirmed, StateReady)

	// Frames may trail the greeting in the same read.
	if len(rest) > 0 {
		c.framer.Push(rest)
	}

	go c.readLoop()
	return nil
}

// awaitGreeting reads until the confirmation line arrives, applying the
// telnet filter underneath. It returns any bytes that followed the
// line. Non-matching lines before the greeting are discarded.
func (c *Connection) awaitGreeting(conn net.Conn) ([]byte, error) {
	deadline := time.Now().Add(c.config.HandshakeTimeout)
	conn.SetReadDeadline(deadline)
	defer conn.SetReadDeadline(time.Time{})

	buf := make([]byte, c.config.ReadBufferSize)
	var pending []byte

	for {
		n, err := conn.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
		}
		data, replies := c.filter.Filter(buf[:n])
		if len(replies) > 0 {
			c.writeRaw(replies)
		}
		pending = append(pending, data...)

		for {
			idx := bytes.Index(pending, []byte("\r\n"))
			if idx < 0 {
				break
			}
			line := string(pending[:idx])
			pending = pending[idx+2:]

			scheme, id, ok := wire.ParseGreeting(line)
			if !ok {
				continue
			}
			if scheme != c.config.Scheme {
				return nil, fmt.Errorf("%w: scheme %q, want %q",
					ErrHandshakeFailed, scheme, c.config.Scheme)
			}
			c.peerID.Store(int64(id))
			c.logHandshake(line, id)
			return pending, nil
		}
	}
}

// Send frames payload as a request and writes it. The connection must
// be confirmed; the exchange layer serialises submits on top of this.
func (c *Connection) Send(payload string) error {
	switch c.State() {
	case StateReady, StateAwaitingResponse:
	default:
		return ErrNotConnected
	}

	frame := wire.AppendRequest(nil, payload)
	if err := c.writeRaw(frame); err != nil {
		return err
	}
	c.logPayload(log.DirectionOut, log.PayloadRequest, payload)
	return nil
}

func (c *Connection) writeRaw(data []byte) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// BeginRequest moves READY to AWAITING_RESPONSE. It reports false when
// the connection is not READY, in which case the caller queues.
func (c *Connection) BeginRequest() bool {
	if c.state.CompareAndSwap(int32(StateReady), int32(StateAwaitingResponse)) {
		c.notifyStateChange(StateReady, StateAwaitingResponse)
		return true
	}
	return false
}

// EndRequest moves AWAITING_RESPONSE back to READY.
func (c *Connection) EndRequest() {
	if c.state.CompareAndSwap(int32(StateAwaitingResponse), int32(StateReady)) {
		c.notifyStateChange(StateAwaitingResponse, StateReady)
	}
}

// Close closes the connection. It is safe to call more than once.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		old := c.State()
		c.state.Store(int32(StateClosed))

		if c.cancel != nil {
			c.cancel()
		}
		c.mu.Lock()
		if c.conn != nil {
			c.conn.Close()
		}
		c.mu.Unlock()

		if old != StateClosed {
			c.notifyStateChange(old, StateClosed)
		}
	})
	return nil
}

// RemoteAddr returns the remote network address, or nil.
func (c *Connection) RemoteAddr() net.Addr {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.conn != nil {
		return c.conn.RemoteAddr()
	}
	return nil
}

// readLoop reads, filters and frames inbound bytes until the
// connection closes. Frames are handed to the handler; a read error
// closes the connection.
func (c *Connection) readLoop() {
	buf := make([]byte, c.config.ReadBufferSize)
	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()
		if conn == nil {
			return
		}

		n, err := conn.Read(buf)
		if err != nil {
			if c.State() != StateClosed {
				c.handler.OnError(fmt.Errorf("read error: %w", err))
				c.Close()
			}
			return
		}

		data, replies := c.filter.Filter(buf[:n])
		if len(replies) > 0 {
			c.writeRaw(replies)
		}
		c.framer.Push(data)
		for {
			frame, ok := c.framer.Next()
			if !ok {
				break
			}
			role := log.PayloadResponse
			if frame.Role == wire.RoleRequest {
				role = log.PayloadRequest
			}
			c.logPayload(log.DirectionIn, role, frame.Payload)
			c.handler.OnFrame(frame)
		}
	}
}

func (c *Connection) notifyStateChange(oldState, newState ConnectionState) {
	if c.handler != nil {
		c.handler.OnStateChange(oldState, newState)
	}
	c.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Layer:        log.LayerTransport,
		Category:     log.CategoryState,
		LocalRole:    log.RoleClient,
		PeerID:       uint(c.PeerID()),
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityConnection,
			OldState: oldState.String(),
			NewState: newState.String(),
		},
	})
}

func (c *Connection) logHandshake(line string, id int) {
	c.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerTransport,
		Category:     log.CategoryHandshake,
		LocalRole:    log.RoleClient,
		PeerID:       uint(id),
		Payload: &log.PayloadEvent{
			Role: log.PayloadResponse,
			Line: line,
		},
	})
}

func (c *Connection) logPayload(dir log.Direction, role log.PayloadRole, line string) {
	c.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    dir,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		LocalRole:    log.RoleClient,
		PeerID:       uint(c.PeerID()),
		Payload: &log.PayloadEvent{
			Role: role,
			Line: line,
		},
	})
}
