package interaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// Exchange errors.
var (
	ErrTimeout         = errors.New("exchange timed out")
	ErrDisconnected    = errors.New("connection closed with exchange pending")
	ErrCancelled       = errors.New("exchange cancelled")
	ErrCommandRejected = errors.New("server rejected the command")
	ErrUnknownForm     = errors.New("response form not registered")
)

// Conn is the connection surface the exchange manager drives. It is
// implemented by *transport.Connection.
type Conn interface {
	// Send frames and writes a request payload.
	Send(payload string) error

	// BeginRequest moves READY to AWAITING_RESPONSE; false means the
	// connection is busy or not confirmed yet.
	BeginRequest() bool

	// EndRequest moves AWAITING_RESPONSE back to READY.
	EndRequest()
}

// Result is a completed exchange: the matched response payload, its
// capture offsets and the kind of form that matched.
type Result struct {
	Kind    command.Kind
	Payload string
	Match   *wire.Match
}

// Notification is an inbound payload that matched a registered form
// but did not belong to the pending exchange.
type Notification struct {
	Kind    command.Kind
	Payload string
	Match   *wire.Match
}

// NotificationFunc receives unsolicited notifications. It runs on the
// connection's read goroutine and must not block.
type NotificationFunc func(n Notification)

// ExchangeConfig configures an exchange manager.
type ExchangeConfig struct {
	// DefaultTimeout applies to Submit (default: 5s).
	DefaultTimeout time.Duration

	// OnNotification receives unsolicited notifications (optional).
	OnNotification NotificationFunc
}

// DefaultExchangeConfig returns the default exchange configuration.
func DefaultExchangeConfig() ExchangeConfig {
	return ExchangeConfig{
		DefaultTimeout: 5 * time.Second,
	}
}

type outcome struct {
	result Result
	err    error
}

type exchange struct {
	payload string
	respID  wire.PatternID
	timeout time.Duration // 0 means no timer
	done    chan outcome
	timer   *time.Timer
}

// ExchangeManager serialises request/response exchanges over one
// connection. Every response form of the command codec is compiled
// into its dispatch table at construction, with the error response
// registered first.
type ExchangeManager struct {
	conn   Conn
	config ExchangeConfig

	table  *wire.Table
	errID  wire.PatternID
	byExpr map[string]wire.PatternID
	kinds  map[wire.PatternID]command.Kind

	mu     sync.Mutex
	active *exchange
	queue  []*exchange
	closed bool
}

// NewExchangeManager creates an exchange manager bound to conn.
func NewExchangeManager(conn Conn, config ExchangeConfig) *ExchangeManager {
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = 5 * time.Second
	}

	table := wire.NewTable()
	m := &ExchangeManager{
		conn:   conn,
		config: config,
		table:  table,
		byExpr: make(map[string]wire.PatternID),
		kinds:  make(map[wire.PatternID]command.Kind),
	}
	m.errID = table.MustRegister(wire.RoleResponse, wire.ErrorPayload, 1)
	for _, f := range command.ResponseForms {
		id := table.MustRegister(wire.RoleResponse, f.Expr, f.Captures)
		m.byExpr[f.Expr] = id
		m.kinds[id] = f.Kind
	}
	return m
}

// Submit sends the request and blocks until its response form or the
// error response matches, the default timeout expires, or the
// connection goes away. Submits while another exchange is outstanding
// queue in FIFO order; completions preserve submission order.
func (m *ExchangeManager) Submit(ctx context.Context, req command.Request) (Result, error) {
	return m.SubmitWithTimeout(ctx, req, m.config.DefaultTimeout)
}

// SubmitNoTimeout is Submit with the never-timeout policy; only the
// context, the error response, or a disconnect can end the exchange.
func (m *ExchangeManager) SubmitNoTimeout(ctx context.Context, req command.Request) (Result, error) {
	return m.SubmitWithTimeout(ctx, req, 0)
}

// SubmitWithTimeout is Submit with a per-request timeout. A zero or
// negative timeout means never.
func (m *ExchangeManager) SubmitWithTimeout(ctx context.Context, req command.Request, timeout time.Duration) (Result, error) {
	respID, ok := m.byExpr[req.Response.Expr]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownForm, req.Response.Expr)
	}

	ex := &exchange{
		payload: req.Payload,
		respID:  respID,
		done:    make(chan outcome, 1),
	}
	if timeout > 0 {
		ex.timeout = timeout
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return Result{}, ErrCancelled
	}
	m.queue = append(m.queue, ex)
	m.pump()
	m.mu.Unlock()

	select {
	case out := <-ex.done:
		return out.result, out.err
	case <-ctx.Done():
		m.abort(ex)
		return Result{}, ErrCancelled
	}
}

// pump starts the next queued exchange when the connection is idle.
// Called with the mutex held.
func (m *ExchangeManager) pump() {
	for m.active == nil && len(m.queue) > 0 {
		if !m.conn.BeginRequest() {
			return
		}
		ex := m.queue[0]
		m.queue = m.queue[1:]
		m.active = ex

		if err := m.conn.Send(ex.payload); err != nil {
			m.active = nil
			m.conn.EndRequest()
			ex.done <- outcome{err: fmt.Errorf("%w: %v", ErrDisconnected, err)}
			continue
		}
		if ex.timeout > 0 {
			ex.timer = time.AfterFunc(ex.timeout, func() { m.onTimeout(ex) })
		}
		return
	}
}

// onTimeout expires the exchange if it is still the active one. The
// connection stays open.
func (m *ExchangeManager) onTimeout(ex *exchange) {
	m.mu.Lock()
	if m.active != ex {
		m.mu.Unlock()
		return
	}
	m.active = nil
	m.conn.EndRequest()
	m.pump()
	m.mu.Unlock()

	ex.done <- outcome{err: ErrTimeout}
}

// abort removes a context-cancelled exchange wherever it is.
func (m *ExchangeManager) abort(ex *exchange) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == ex {
		if ex.timer != nil {
			ex.timer.Stop()
		}
		m.active = nil
		m.conn.EndRequest()
		m.pump()
		return
	}
	for i, queued := range m.queue {
		if queued == ex {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

// HandleResponse feeds one inbound response payload into the manager.
// It reports whether the payload matched any registered form; an
// unmatched payload is non-fatal and the caller logs it.
func (m *ExchangeManager) HandleResponse(payload string) bool {
	match, ok := m.table.Lookup(wire.RoleResponse, payload)
	if !ok {
		return false
	}

	m.mu.Lock()
	ex := m.active
	if ex != nil && (match.Pattern == ex.respID || match.Pattern == m.errID) {
		if ex.timer != nil {
			ex.timer.Stop()
		}
		m.active = nil
		m.conn.EndRequest()
		m.pump()
		m.mu.Unlock()

		if match.Pattern == m.errID {
			ex.done <- outcome{err: ErrCommandRejected}
		} else {
			ex.done <- outcome{result: Result{Kind: m.kinds[match.Pattern], Payload: payload, Match: match}}
		}
		return true
	}
	notify := m.config.OnNotification
	kind := m.kinds[match.Pattern]
	m.mu.Unlock()

	// Some other registered form: an unsolicited notification. It
	// never satisfies the pending request.
	if notify != nil {
		notify(Notification{Kind: kind, Payload: payload, Match: match})
	}
	return true
}

// HandleDisconnect fails the active and every queued exchange with
// the disconnected error.
func (m *ExchangeManager) HandleDisconnect() {
	m.failAll(ErrDisconnected)
}

// Close cancels the active and every queued exchange and refuses
// further submits.
func (m *ExchangeManager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.failAll(ErrCancelled)
}

func (m *ExchangeManager) failAll(err error) {
	m.mu.Lock()
	active := m.active
	queued := m.queue
	m.active = nil
	m.queue = nil
	m.mu.Unlock()

	if active != nil {
		if active.timer != nil {
			active.timer.Stop()
		}
		active.done <- outcome{err: err}
	}
	for _, ex := range queued {
		ex.done <- outcome{err: err}
	}
}
