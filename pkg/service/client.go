package service

import (
	"context"
	"time"

	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/log"
	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/subscription"
	"github.com/hlx-protocol/hlx-go/pkg/transport"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// ClientConfig configures the controller-side service.
type ClientConfig struct {
	// Scheme is the greeting scheme to expect (default: telnet).
	Scheme string

	// RequestTimeout is the default exchange timeout (default: 5s).
	RequestTimeout time.Duration

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		RequestTimeout: 5 * time.Second,
	}
}

// Client is the controller side of the control connection. It submits
// typed operations, keeps a mirror repository in step with everything
// the amplifier announces and publishes one typed event per state
// change.
type Client struct {
	config ClientConfig
	logger log.Logger

	conn      *transport.Connection
	exchanges *interaction.ExchangeManager
	mirror    *model.Repository
	bus       *subscription.Bus
}

// NewClient creates a client (not yet connected).
func NewClient(config ClientConfig) *Client {
	if config.RequestTimeout == 0 {
		config.RequestTimeout = 5 * time.Second
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}

	c := &Client{
		config: config,
		logger: config.Logger,
		mirror: model.NewRepository(),
		bus:    subscription.NewBus(),
	}
	c.conn = transport.NewConnection(transport.ConnectionConfig{
		Scheme: config.Scheme,
		Logger: config.Logger,
	}, (*clientHandler)(c))
	c.exchanges = interaction.NewExchangeManager(c.conn, interaction.ExchangeConfig{
		DefaultTimeout: config.RequestTimeout,
		OnNotification: c.onNotification,
	})
	return c
}

// Connect dials the amplifier and completes the handshake.
func (c *Client) Connect(ctx context.Context, address string) error {
	return c.conn.Connect(ctx, address)
}

// Close closes the connection and cancels every pending exchange.
func (c *Client) Close() error {
	c.exchanges.Close()
	return c.conn.Close()
}

// PeerID returns the identifier the amplifier assigned in its greeting.
func (c *Client) PeerID() int {
	return c.conn.PeerID()
}

// State returns the connection state.
func (c *Client) State() transport.ConnectionState {
	return c.conn.State()
}

// Repository returns the mirror repository. It reflects every state
// line the amplifier has announced on this connection; it is not
// authoritative.
func (c *Client) Repository() *model.Repository {
	return c.mirror
}

// Subscribe registers fn for every state-change event.
func (c *Client) Subscribe(fn func(subscription.Event)) subscription.SubscriptionID {
	return c.bus.Subscribe(fn)
}

// Unsubscribe removes a subscription.
func (c *Client) Unsubscribe(id subscription.SubscriptionID) {
	c.bus.Unsubscribe(id)
}

func (c *Client) onNotification(n interaction.Notification) {
	c.apply(n.Kind, n.Payload, n.Match)
}

// clientHandler adapts the transport callbacks onto the client without
// exporting them on the Client API.
type clientHandler Client

func (h *clientHandler) OnFrame(frame wire.Frame) {
	c := (*Client)(h)
	if frame.Role != wire.RoleResponse {
		c.logDropped("request frame from server", frame.Payload)
		return
	}
	if !c.exchanges.HandleResponse(frame.Payload) {
		c.logDropped("unrecognised response payload", frame.Payload)
	}
}

func (h *clientHandler) OnStateChange(oldState, newState transport.ConnectionState) {
	if newState == transport.StateClosed {
		(*Client)(h).exchanges.HandleDisconnect()
	}
}

func (h *clientHandler) OnError(err error) {
	c := (*Client)(h)
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.conn.ConnID(),
		Layer:        log.LayerService,
		Category:     log.CategoryError,
		LocalRole:    log.RoleClient,
		PeerID:       uint(c.conn.PeerID()),
		Error: &log.ErrorEventData{
			Layer:   log.LayerService,
			Message: err.Error(),
		},
	})
}

func (c *Client) logDropped(message, payload string) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.conn.ConnID(),
		Direction:    log.DirectionIn,
		Layer:        log.LayerService,
		Category:     log.CategoryError,
		LocalRole:    log.RoleClient,
		PeerID:       uint(c.conn.PeerID()),
		Error: &log.ErrorEventData{
			Layer:   log.LayerService,
			Message: message,
			Context: payload,
		},
	})
}
