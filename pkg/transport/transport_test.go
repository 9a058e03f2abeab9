package transport

import (
	"context"
	"testing"
	"time"

	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

type testHandler struct {
	frames chan wire.Frame
	states chan ConnectionState
	errs   chan error
}

func newTestHandler() *testHandler {
	return &testHandler{
		frames: make(chan wire.Frame, 16),
		states: make(chan ConnectionState, 16),
		errs:   make(chan error, 16),
	}
}

func (h *testHandler) OnFrame(frame wire.Frame) { h.frames <- frame }
func (h *testHandler) OnStateChange(_, newState ConnectionState) {
	h.states <- newState
}
func (h *testHandler) OnError(err error) { h.errs <- err }

func (h *testHandler) awaitFrame(t *testing.T) wire.Frame {
	t.Helper()
	select {
	case f := <-h.frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for frame")
		return wire.Frame{}
	}
}

func (h *testHandler) awaitState(t *testing.T, want ConnectionState) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-h.states:
			if s == want {
				return
			}
		case <-deadline:
			t.Fatalf("timeout waiting for state %v", want)
		}
	}
}

func startEchoServer(t *testing.T) *Server {
	t.Helper()
	srv := NewServer(ServerConfig{
		Address: "127.0.0.1:0",
		OnRequest: func(conn *ServerConn, payload string) {
			conn.SendResponse(payload)
		},
	})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("server start: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })
	return srv
}

func TestIdentifierManagerSmallestFree(t *testing.T) {
	m := NewIdentifierManager()

	got := []int{m.Claim(), m.Claim()}
	m.Release(1)
	got = append(got, m.Claim(), m.Claim())

	want := []int{1, 2, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("claim sequence = %v, want %v", got, want)
		}
	}
	if m.InUse() != 3 {
		t.Errorf("InUse = %d, want 3", m.InUse())
	}
}

func TestConnectionHandshakeAndEcho(t *testing.T) {
	srv := startEchoServer(t)

	h := newTestHandler()
	conn := NewConnection(DefaultConnectionConfig(), h)
	if err := conn.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	if conn.State() != StateReady {
		t.Fatalf("state after connect = %v, want READY", conn.State())
	}
	if conn.PeerID() != 1 {
		t.Errorf("peer id = %d, want 1", conn.PeerID())
	}

	if err := conn.Send("QO1"); err != nil {
		t.Fatalf("send: %v", err)
	}
	f := h.awaitFrame(t)
	if f.Role != wire.RoleResponse || f.Payload != "QO1" {
		t.Errorf("frame = %v %q, want response QO1", f.Role, f.Payload)
	}
}

func TestConnectionStateSequence(t *testing.T) {
	srv := startEchoServer(t)

	h := newTestHandler()
	conn := NewConnection(DefaultConnectionConfig(), h)
	if err := conn.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	for _, want := range []ConnectionState{StateConnected, StateConfirmed, StateReady} {
		select {
		case got := <-h.states:
			if got != want {
				t.Fatalf("state = %v, want %v", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for %v", want)
		}
	}

	conn.Close()
	h.awaitState(t, StateClosed)
}

func TestBeginEndRequest(t *testing.T) {
	srv := startEchoServer(t)

	h := newTestHandler()
	conn := NewConnection(DefaultConnectionConfig(), h)
	if err := conn.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	if !conn.BeginRequest() {
		t.Fatal("BeginRequest refused in READY")
	}
	if conn.State() != StateAwaitingResponse {
		t.Fatalf("state = %v, want AWAITING_RESPONSE", conn.State())
	}
	if conn.BeginRequest() {
		t.Fatal("BeginRequest accepted while outstanding")
	}
	conn.EndRequest()
	if conn.State() != StateReady {
		t.Fatalf("state = %v, want READY", conn.State())
	}
}

func TestServerBroadcast(t *testing.T) {
	srv := startEchoServer(t)

	h1 := newTestHandler()
	c1 := NewConnection(DefaultConnectionConfig(), h1)
	if err := c1.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("connect 1: %v", err)
	}
	defer c1.Close()

	h2 := newTestHandler()
	c2 := NewConnection(DefaultConnectionConfig(), h2)
	if err := c2.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("connect 2: %v", err)
	}
	defer c2.Close()

	if c2.PeerID() != 2 {
		t.Errorf("second peer id = %d, want 2", c2.PeerID())
	}

	srv.Broadcast("VO3-10")
	for _, h := range []*testHandler{h1, h2} {
		f := h.awaitFrame(t)
		if f.Payload != "VO3-10" {
			t.Errorf("broadcast payload = %q", f.Payload)
		}
	}
}

func TestIdentifierReleasedOnDisconnect(t *testing.T) {
	disconnected := make(chan struct{}, 1)
	srv := NewServer(ServerConfig{
		Address:      "127.0.0.1:0",
		OnDisconnect: func(*ServerConn) { disconnected <- struct{}{} },
	})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("server start: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })

	h1 := newTestHandler()
	c1 := NewConnection(DefaultConnectionConfig(), h1)
	if err := c1.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	c1.Close()

	select {
	case <-disconnected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for disconnect")
	}

	h2 := newTestHandler()
	c2 := NewConnection(DefaultConnectionConfig(), h2)
	if err := c2.Connect(context.Background(), srv.Addr().String()); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	defer c2.Close()

	if c2.PeerID() != 1 {
		t.Errorf("reclaimed peer id = %d, want 1", c2.PeerID())
	}
}

func TestSendBeforeConnectRefused(t *testing.T) {
	conn := NewConnection(DefaultConnectionConfig(), newTestHandler())
	if err := conn.Send("QO1"); err != ErrNotConnected {
		t.Errorf("send on disconnected = %v, want ErrNotConnected", err)
	}
}
