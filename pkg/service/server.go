package service

import (
	"context"
	"fmt"
	"net"

	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/log"
	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/persist"
	"github.com/hlx-protocol/hlx-go/pkg/transport"
)

// ServerConfig configures the amplifier service.
type ServerConfig struct {
	// Address to listen on (default ":23").
	Address string

	// Scheme is the greeting scheme (default: telnet).
	Scheme string

	// BackupPath is the backup blob location (default: "hlx-backup.cbor").
	BackupPath string

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// DefaultServerConfig returns the default service configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:    fmt.Sprintf(":%d", transport.DefaultPort),
		BackupPath: "hlx-backup.cbor",
	}
}

// Server is the amplifier control service: the model repository, the
// command dispatch and the TCP front end.
type Server struct {
	config ServerConfig
	logger log.Logger

	repo     *model.Repository
	store    *persist.Store
	commands *interaction.CommandManager
	tcp      *transport.Server
}

// NewServer creates the service around an existing repository. The
// repository is usually pre-seeded from a profile or from defaults.
func NewServer(config ServerConfig, repo *model.Repository) *Server {
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", transport.DefaultPort)
	}
	if config.BackupPath == "" {
		config.BackupPath = "hlx-backup.cbor"
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}

	s := &Server{
		config: config,
		logger: config.Logger,
		repo:   repo,
		store:  persist.NewStore(config.BackupPath),
	}

	s.tcp = transport.NewServer(transport.ServerConfig{
		Address:   config.Address,
		Scheme:    config.Scheme,
		Logger:    config.Logger,
		OnRequest: s.onRequest,
		OnError:   s.onError,
	})
	s.commands = interaction.NewCommandManager(s.tcp.Broadcast)

	(&zoneController{s}).register()
	(&groupController{s}).register()
	(&sourceController{s}).register()
	(&presetController{s}).register()
	(&favoriteController{s}).register()
	(&frontPanelController{s}).register()
	(&infraredController{s}).register()
	(&networkController{s}).register()
	(&configController{s}).register()

	return s
}

// Start binds the listener.
func (s *Server) Start(ctx context.Context) error {
	return s.tcp.Start(ctx)
}

// Stop closes the listener and every connection.
func (s *Server) Stop() error {
	return s.tcp.Stop()
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.tcp.Addr()
}

// Repository returns the authoritative model repository.
func (s *Server) Repository() *model.Repository {
	return s.repo
}

// Store returns the backup blob store.
func (s *Server) Store() *persist.Store {
	return s.store
}

func (s *Server) onRequest(conn *transport.ServerConn, payload string) {
	s.commands.Dispatch(conn, payload)
}

func (s *Server) onError(conn *transport.ServerConn, err error) {
	ev := log.Event{
		Layer:     log.LayerTransport,
		Category:  log.CategoryError,
		LocalRole: log.RoleServer,
		Error: &log.ErrorEventData{
			Layer:   log.LayerTransport,
			Message: err.Error(),
		},
	}
	if conn != nil {
		ev.ConnectionID = conn.ConnID()
		ev.PeerID = uint(conn.ID())
	}
	s.logger.Log(ev)
}

// resolve answers a mutation echo according to the model status. A
// changed value is broadcast so every observer sees it and marks the
// repository dirty; an unchanged write is echoed to the initiator only,
// which keeps re-applies idempotent; any other status becomes the error
// response.
func (s *Server) resolve(conn interaction.Responder, st model.Status, echo string) error {
	switch {
	case st.Changed():
		s.repo.MarkDirty()
		s.commands.Broadcast(echo)
		return nil
	case st == model.StatusAlreadySet:
		return conn.SendResponse(echo)
	default:
		return fmt.Errorf("mutation refused: %s", st)
	}
}
