package interaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

type fakeConn struct {
	mu   sync.Mutex
	busy bool
	sent []string
}

func (c *fakeConn) Send(payload string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, payload)
	return nil
}

func (c *fakeConn) BeginRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

func (c *fakeConn) EndRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

func (c *fakeConn) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func (c *fakeConn) sentAt(i int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent[i]
}

func waitSent(t *testing.T, c *fakeConn, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for c.sentCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for %d sends, have %d", n, c.sentCount())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSubmitCompletesOnResponse(t *testing.T) {
	conn := &fakeConn{}
	m := NewExchangeManager(conn, DefaultExchangeConfig())

	type done struct {
		res Result
		err error
	}
	ch := make(chan done, 1)
	go func() {
		res, err := m.Submit(context.Background(), command.ZoneVolumeUp(3))
		ch <- done{res, err}
	}()

	waitSent(t, conn, 1)
	if got := conn.sentAt(0); got != "VO3U" {
		t.Fatalf("sent %q, want VO3U", got)
	}

	if !m.HandleResponse("VO3-9") {
		t.Fatal("response payload not matched")
	}
	out := <-ch
	if out.err != nil {
		t.Fatalf("submit error: %v", out.err)
	}
	if out.res.Payload != "VO3-9" {
		t.Errorf("result payload = %q", out.res.Payload)
	}
	level, err := command.CaptureInt(out.res.Payload, out.res.Match, 2)
	if err != nil || level != -9 {
		t.Errorf("level capture = %d/%v", level, err)
	}
}

func TestErrorResponseRejectsCommand(t *testing.T) {
	conn := &fakeConn{}
	m := NewExchangeManager(conn, DefaultExchangeConfig())

	ch := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background(), command.ZoneVolumeUp(3))
		ch <- err
	}()

	waitSent(t, conn, 1)
	m.HandleResponse(wire.ErrorPayload)
	if err := <-ch; !errors.Is(err, ErrCommandRejected) {
		t.Errorf("err = %v, want ErrCommandRejected", err)
	}
}

func TestNotificationNeverSatisfiesPending(t *testing.T) {
	conn := &fakeConn{}
	var notifs []Notification
	var notifMu sync.Mutex
	config := DefaultExchangeConfig()
	config.OnNotification = func(n Notification) {
		notifMu.Lock()
		notifs = append(notifs, n)
		notifMu.Unlock()
	}
	m := NewExchangeManager(conn, config)

	ch := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background(), command.SetZoneVolume(3, -10))
		ch <- err
	}()
	waitSent(t, conn, 1)

	// A brightness notification matches a registered form but not the
	// pending request's response form.
	m.HandleResponse("SD2")
	select {
	case err := <-ch:
		t.Fatalf("notification satisfied the pending exchange: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	notifMu.Lock()
	if len(notifs) != 1 || notifs[0].Kind != command.KindBrightness {
		t.Fatalf("notifications = %+v", notifs)
	}
	notifMu.Unlock()

	m.HandleResponse("VO3-10")
	if err := <-ch; err != nil {
		t.Fatalf("submit error: %v", err)
	}
}

func TestSubmitsQueueFIFO(t *testing.T) {
	conn := &fakeConn{}
	m := NewExchangeManager(conn, DefaultExchangeConfig())

	order := make(chan int, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := m.Submit(context.Background(), command.ZoneVolumeUp(1)); err != nil {
			t.Errorf("first submit: %v", err)
		}
		order <- 1
	}()
	waitSent(t, conn, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := m.Submit(context.Background(), command.ZoneVolumeUp(2)); err != nil {
			t.Errorf("second submit: %v", err)
		}
		order <- 2
	}()

	// The second request must not hit the wire while the first is
	// outstanding.
	time.Sleep(50 * time.Millisecond)
	if conn.sentCount() != 1 {
		t.Fatalf("sent %d requests while one outstanding", conn.sentCount())
	}

	m.HandleResponse("VO1-5")
	waitSent(t, conn, 2)
	if got := conn.sentAt(1); got != "VO2U" {
		t.Fatalf("second send = %q", got)
	}
	m.HandleResponse("VO2-5")
	wg.Wait()

	if first := <-order; first != 1 {
		t.Errorf("completion order started with %d", first)
	}
}

func TestSubmitTimeoutKeepsConnection(t *testing.T) {
	conn := &fakeConn{}
	m := NewExchangeManager(conn, DefaultExchangeConfig())

	_, err := m.SubmitWithTimeout(context.Background(), command.ZoneVolumeUp(3), 20*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}

	// The connection returned to idle; a later submit proceeds.
	ch := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background(), command.ZoneVolumeDown(3))
		ch <- err
	}()
	waitSent(t, conn, 2)
	m.HandleResponse("VO3-11")
	if err := <-ch; err != nil {
		t.Fatalf("submit after timeout: %v", err)
	}
}

func TestDisconnectFailsAllPending(t *testing.T) {
	conn := &fakeConn{}
	m := NewExchangeManager(conn, DefaultExchangeConfig())

	errs := make(chan error, 2)
	go func() {
		_, err := m.SubmitNoTimeout(context.Background(), command.ZoneVolumeUp(1))
		errs <- err
	}()
	waitSent(t, conn, 1)
	go func() {
		_, err := m.SubmitNoTimeout(context.Background(), command.ZoneVolumeUp(2))
		errs <- err
	}()

	// Give the second submit time to queue.
	time.Sleep(20 * time.Millisecond)
	m.HandleDisconnect()

	for i := 0; i < 2; i++ {
		if err := <-errs; !errors.Is(err, ErrDisconnected) {
			t.Errorf("err = %v, want ErrDisconnected", err)
		}
	}
}

func TestUnmatchedPayloadReported(t *testing.T) {
	m := NewExchangeManager(&fakeConn{}, DefaultExchangeConfig())
	if m.HandleResponse("GIBBERISH!") {
		t.Error("gibberish payload reported as matched")
	}
}

type fakeResponder struct {
	mu   sync.Mutex
	id   int
	sent []string
}

func (r *fakeResponder) SendResponse(payload string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, payload)
	return nil
}

func (r *fakeResponder) ID() int { return r.id }

func TestCommandManagerDispatch(t *testing.T) {
	var broadcasts []string
	m := NewCommandManager(func(p string) { broadcasts = append(broadcasts, p) })

	m.MustRegister(command.ReqZoneVolumeAdjust, func(conn Responder, payload string, match *wire.Match) error {
		zone, err := command.CaptureInt(payload, match, 1)
		if err != nil {
			return err
		}
		m.Broadcast(fmt.Sprintf("VO%d-9", zone))
		return nil
	})

	conn := &fakeResponder{id: 1}
	m.Dispatch(conn, "VO3U")

	if len(broadcasts) != 1 || broadcasts[0] != "VO3-9" {
		t.Errorf("broadcasts = %v", broadcasts)
	}
	if len(conn.sent) != 0 {
		t.Errorf("unexpected direct responses: %v", conn.sent)
	}
}

func TestCommandManagerNoMatchSendsError(t *testing.T) {
	m := NewCommandManager(func(string) {})
	conn := &fakeResponder{id: 1}

	m.Dispatch(conn, "NONSENSE")
	if len(conn.sent) != 1 || conn.sent[0] != wire.ErrorPayload {
		t.Errorf("responses = %v, want [ERROR]", conn.sent)
	}
}

func TestCommandManagerHandlerErrorSendsError(t *testing.T) {
	m := NewCommandManager(func(string) {})
	m.MustRegister(command.ReqQueryInfrared, func(Responder, string, *wire.Match) error {
		return errors.New("model refused")
	})

	conn := &fakeResponder{id: 2}
	m.Dispatch(conn, "QIRL")
	if len(conn.sent) != 1 || conn.sent[0] != wire.ErrorPayload {
		t.Errorf("responses = %v, want [ERROR]", conn.sent)
	}
}

func TestCommandManagerDuplicateRegistration(t *testing.T) {
	m := NewCommandManager(func(string) {})
	if err := m.Register(command.FormBrightness, func(Responder, string, *wire.Match) error { return nil }); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := m.Register(command.FormBrightness, func(Responder, string, *wire.Match) error { return nil })
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("err = %v, want ErrDuplicateRegistration", err)
	}
}
