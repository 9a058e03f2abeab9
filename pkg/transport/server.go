package transport

import (
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

// DefaultPort is the HLX control port.
const DefaultPort = 23

// ServerConfig configures an HLX server.
type ServerConfig struct {
	// Address to listen on (default ":23").
	Address string

	// Scheme is the URL scheme in the greeting (default: telnet).
	Scheme string

	// ReadBufferSize is the socket read chunk size (default: 4096).
	ReadBufferSize int

	// Logger for protocol logging (optional).
	Logger log.Logger

	// OnConnect is called after the greeting was sent on a new
	// connection.
	OnConnect func(conn *ServerConn)

	// OnDisconnect is called when a connection is closed and its
	// identifier released.
	OnDisconnect func(conn *ServerConn)

	// OnRequest is called for every framed request payload.
	OnRequest func(conn *ServerConn, payload string)

	// OnError is called when an error occurs. conn may be nil for
	// accept errors.
	OnError func(conn *ServerConn, err error)
}

// Server accepts HLX control connections and fans responses out to
// every connected client.
type Server struct {
	config   ServerConfig
	listener net.Listener

	ids *IdentifierManager

	conns   map[*ServerConn]struct{}
	connsMu sync.RWMutex

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewServer creates a server.
func NewServer(config ServerConfig) *Server {
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", DefaultPort)
	}
	if config.Scheme == "" {
		config.Scheme = wire.DefaultScheme
	}
	if config.ReadBufferSize == 0 {
		config.ReadBufferSize = 4096
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}

	return &Server{
		config: config,
		ids:    NewIdentifierManager(),
		conns:  make(map[*ServerConn]struct{}),
	}
}

// Start binds the listener and begins accepting connections.
func (s *Server) Start(ctx context.Context) error {
	if s.running.Load() {
		return fmt.Errorf("server already running")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener
	s.running.Store(true)

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop stops the server and closes every connection.
func (s *Server) Stop() error {
	if !s.running.Load() {
		return nil
	}
	s.running.Store(false)
	s.cancel()

	if s.listener != nil {
		s.listener.Close()
	}

	s.connsMu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.connsMu.Unlock()

	s.wg.Wait()
	return nil
}

// Addr returns the listen address.
func (s *Server) Addr() net.Addr {
	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}

// ConnectionCount returns the number of active connections.
func (s *Server) ConnectionCount() int {
	s.connsMu.RLock()
	defer s.connsMu.RUnlock()
	return len(s.conns)
}

// Broadcast frames payload as a response and writes it to every
// connected client. Write errors on one connection do not stop the
// others.
func (s *Server) Broadcast(payload string) {
	frame := wire.AppendResponse(nil, payload)

	s.connsMu.RLock()
	conns := make([]*ServerConn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.connsMu.RUnlock()

	for _, conn := range conns {
		if err := conn.sendRaw(frame); err != nil && s.config.OnError != nil {
			s.config.OnError(conn, err)
		} else {
			conn.logPayload(log.DirectionOut, payload)
		}
	}
}

// acceptLoop accepts incoming connections.
func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for s.running.Load() {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.running.Load() && s.config.OnError != nil {
				s.config.OnError(nil, fmt.Errorf("accept error: %w", err))
			}
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection claims an identifier, sends the greeting, runs the
// read loop and releases the identifier on exit. A request that was in
// flight before the greeting write completed is still read only after
// it, so an unconfirmed request is never acted upon.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()

	id := s.ids.Claim()
	sconn := &ServerConn{
		conn:       conn,
		server:     s,
		id:         id,
		connID:     uuid.New().String(),
		framer:     wire.NewFramer(),
		closeCh:    make(chan struct{}),
		remoteAddr: conn.RemoteAddr(),
	}

	if err := sconn.sendRaw([]byte(wire.Greeting(s.config.Scheme, id))); err != nil {
		s.ids.Release(id)
		conn.Close()
		if s.config.OnError != nil {
			s.config.OnError(nil, fmt.Errorf("greeting write: %w", err))
		}
		return
	}
	sconn.logHandshake()

	s.connsMu.Lock()
	s.conns[sconn] = struct{}{}
	s.connsMu.Unlock()

	sconn.logState("", "CONNECTED")
	if s.config.OnConnect != nil {
		s.config.OnConnect(sconn)
	}

	sconn.readLoop()

	s.connsMu.Lock()
	delete(s.conns, sconn)
	s.connsMu.Unlock()
	s.ids.Release(id)

	sconn.logState("CONNECTED", "CLOSED")
	if s.config.OnDisconnect != nil {
		s.config.OnDisconnect(sconn)
	}
}

// ServerConn is one client connection as seen by the server.
type ServerConn struct {
	conn   net.Conn
	server *Server

	id     int
	connID string

	filter wire.TelnetFilter
	framer *wire.Framer

	closeCh    chan struct{}
	closeOnce  sync.Once
	writeMu    sync.Mutex
	remoteAddr net.Addr
}

// ID returns the wire-visible connection identifier from the greeting.
func (c *ServerConn) ID() int {
	return c.id
}

// ConnID returns the log correlation identifier.
func (c *ServerConn) ConnID() string {
	return c.connID
}

// RemoteAddr returns the client's address.
func (c *ServerConn) RemoteAddr() net.Addr {
	return c.remoteAddr
}

// SendResponse frames payload as a response and writes it to this
// client only.
func (c *ServerConn) SendResponse(payload string) error {
	if err := c.sendRaw(wire.AppendResponse(nil, payload)); err != nil {
		return err
	}
	c.logPayload(log.DirectionOut, payload)
	return nil
}

func (c *ServerConn) sendRaw(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.conn.Write(data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// Close closes the connection.
func (c *ServerConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		err = c.conn.Close()
	})
	return err
}

// readLoop reads, filters and frames inbound bytes. Request frames go
// to the server's OnRequest; response frames from a client are a
// protocol violation and are logged and dropped.
func (c *ServerConn) readLoop() {
	buf := make([]byte, c.server.config.ReadBufferSize)
	for {
		select {
		case <-c.closeCh:
			return
		case <-c.server.ctx.Done():
			return
		default:
		}

		n, err := c.conn.Read(buf)
		if err != nil {
			select {
			case <-c.closeCh:
			default:
				if c.server.config.OnError != nil && c.server.running.Load() {
					c.server.config.OnError(c, err)
				}
			}
			return
		}

		data, replies := c.filter.Filter(buf[:n])
		if len(replies) > 0 {
			c.sendRaw(replies)
		}
		c.framer.Push(data)
		for {
			frame, ok := c.framer.Next()
			if !ok {
				break
			}
			if frame.Role != wire.RoleRequest {
				c.server.config.Logger.Log(log.Event{
					Timestamp:    time.Now(),
					ConnectionID: c.connID,
					Direction:    log.DirectionIn,
					Layer:        log.LayerWire,
					Category:     log.CategoryError,
					LocalRole:    log.RoleServer,
					RemoteAddr:   c.remoteAddr.String(),
					PeerID:       uint(c.id),
					Error: &log.ErrorEventData{
						Layer:   log.LayerWire,
						Message: "response frame from client",
						Context: frame.Payload,
					},
				})
				continue
			}
			c.logPayload(log.DirectionIn, frame.Payload)
			if c.server.config.OnRequest != nil {
				c.server.config.OnRequest(c, frame.Payload)
			}
		}
	}
}

func (c *ServerConn) logHandshake() {
	c.server.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    log.DirectionOut,
		Layer:        log.LayerTransport,
		Category:     log.CategoryHandshake,
		LocalRole:    log.RoleServer,
		RemoteAddr:   c.remoteAddr.String(),
		PeerID:       uint(c.id),
	})
}

func (c *ServerConn) logState(oldState, newState string) {
	c.server.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Layer:        log.LayerTransport,
		Category:     log.CategoryState,
		LocalRole:    log.RoleServer,
		RemoteAddr:   c.remoteAddr.String(),
		PeerID:       uint(c.id),
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityConnection,
			OldState: oldState,
			NewState: newState,
		},
	})
}

func (c *ServerConn) logPayload(dir log.Direction, line string) {
	role := log.PayloadResponse
	if dir == log.DirectionIn {
		role = log.PayloadRequest
	}
	c.server.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    dir,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		LocalRole:    log.RoleServer,
		RemoteAddr:   c.remoteAddr.String(),
		PeerID:       uint(c.id),
		Payload: &log.PayloadEvent{
			Role: role,
			Line: line,
		},
	})
}
