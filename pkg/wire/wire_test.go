package wire

import (
	"bytes"
	"errors"
	"testing"
)

func collectFrames(f *Framer) []Frame {
	var out []Frame
	for {
		fr, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, fr)
	}
}

func TestFramerRoles(t *testing.T) {
	f := NewFramer()
	f.Push([]byte("[VO3S-10]\r\n(VO3-10)\r\n"))

	frames := collectFrames(f)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Role != RoleRequest || frames[0].Payload != "VO3S-10" {
		t.Errorf("frame 0 = %v %q", frames[0].Role, frames[0].Payload)
	}
	if frames[1].Role != RoleResponse || frames[1].Payload != "VO3-10" {
		t.Errorf("frame 1 = %v %q", frames[1].Role, frames[1].Payload)
	}
}

func TestFramerPartialDelivery(t *testing.T) {
	f := NewFramer()

	f.Push([]byte("[VO3"))
	if _, ok := f.Next(); ok {
		t.Fatal("frame emitted from partial input")
	}
	f.Push([]byte("U]\r"))
	if _, ok := f.Next(); ok {
		t.Fatal("frame emitted before line ending complete")
	}
	f.Push([]byte("\n"))

	fr, ok := f.Next()
	if !ok || fr.Payload != "VO3U" || fr.Role != RoleRequest {
		t.Fatalf("frame = %+v ok=%v, want VO3U request", fr, ok)
	}
}

func TestFramerDiscardsGarbage(t *testing.T) {
	f := NewFramer()
	f.Push([]byte("\r\nnoise here(SD2)\r\n\r\n junk [QO1]\r\n"))

	frames := collectFrames(f)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Payload != "SD2" || frames[1].Payload != "QO1" {
		t.Errorf("payloads = %q, %q", frames[0].Payload, frames[1].Payload)
	}
	if f.Pending() {
		t.Error("garbage retained after frames drained")
	}
}

func TestFramerBracketInsideName(t *testing.T) {
	f := NewFramer()
	// A closing bracket inside a quoted name is payload, not a frame
	// end, because the end delimiter includes the line ending.
	f.Push([]byte("(NO3\"A)B\")\r\n"))

	fr, ok := f.Next()
	if !ok {
		t.Fatal("no frame")
	}
	if fr.Payload != `NO3"A)B"` {
		t.Errorf("payload = %q, want %q", fr.Payload, `NO3"A)B"`)
	}
}

func TestTelnetFilterRefusesOptions(t *testing.T) {
	var tf TelnetFilter

	// IAC WILL ECHO(1), IAC DO SGA(3) interleaved with data.
	in := []byte{'a', 255, 251, 1, 'b', 255, 253, 3, 'c'}
	data, replies := tf.Filter(in)

	if string(data) != "abc" {
		t.Errorf("data = %q, want abc", data)
	}
	want := []byte{255, 254, 1, 255, 252, 3}
	if !bytes.Equal(replies, want) {
		t.Errorf("replies = %v, want %v", replies, want)
	}
}

func TestTelnetFilterSplitSequence(t *testing.T) {
	var tf TelnetFilter

	data, replies := tf.Filter([]byte{'x', 255})
	if string(data) != "x" || len(replies) != 0 {
		t.Fatalf("first chunk: data=%q replies=%v", data, replies)
	}
	data, replies = tf.Filter([]byte{251})
	if len(data) != 0 || len(replies) != 0 {
		t.Fatalf("second chunk: data=%q replies=%v", data, replies)
	}
	data, replies = tf.Filter([]byte{1, 'y'})
	if string(data) != "y" {
		t.Errorf("data = %q, want y", data)
	}
	if !bytes.Equal(replies, []byte{255, 254, 1}) {
		t.Errorf("replies = %v, want IAC DONT ECHO", replies)
	}
}

func TestTelnetFilterSubnegotiationAndEscape(t *testing.T) {
	var tf TelnetFilter

	// IAC SB 31 ... IAC SE consumed silently; IAC IAC is a data byte.
	in := []byte{'a', 255, 250, 31, 0, 80, 0, 24, 255, 240, 'b', 255, 255, 'c'}
	data, replies := tf.Filter(in)

	if !bytes.Equal(data, []byte{'a', 'b', 255, 'c'}) {
		t.Errorf("data = %v", data)
	}
	if len(replies) != 0 {
		t.Errorf("replies = %v, want none", replies)
	}
}

func TestTableRegistrationOrderWins(t *testing.T) {
	tbl := NewTable()
	first := tbl.MustRegister(RoleResponse, `VO([0-9]+)U`, 2)
	tbl.MustRegister(RoleResponse, `VO([0-9]+)(U|D)`, 3)

	m, ok := tbl.Lookup(RoleResponse, "VO3U")
	if !ok {
		t.Fatal("no match")
	}
	if m.Pattern != first {
		t.Errorf("matched pattern %d, want first-registered %d", m.Pattern, first)
	}
}

func TestTableWholePayloadOnly(t *testing.T) {
	tbl := NewTable()
	tbl.MustRegister(RoleRequest, `VO([0-9]+)U`, 2)

	if _, ok := tbl.Lookup(RoleRequest, "VO3UX"); ok {
		t.Error("trailing bytes matched")
	}
	if _, ok := tbl.Lookup(RoleRequest, "XVO3U"); ok {
		t.Error("leading bytes matched")
	}
	if _, ok := tbl.Lookup(RoleRequest, "VO3U"); !ok {
		t.Error("exact payload did not match")
	}
}

func TestTableCaptureSpans(t *testing.T) {
	tbl := NewTable()
	tbl.MustRegister(RoleResponse, `EP([0-9]+)B([0-9]+)L(-?[0-9]+)`, 4)

	payload := "EP4B7L-3"
	m, ok := tbl.Lookup(RoleResponse, payload)
	if !ok {
		t.Fatal("no match")
	}
	if got := m.Capture(payload, 0); got != payload {
		t.Errorf("whole match = %q", got)
	}
	if got := m.Capture(payload, 1); got != "4" {
		t.Errorf("capture 1 = %q, want 4", got)
	}
	if got := m.Capture(payload, 2); got != "7" {
		t.Errorf("capture 2 = %q, want 7", got)
	}
	if got := m.Capture(payload, 3); got != "-3" {
		t.Errorf("capture 3 = %q, want -3", got)
	}
}

func TestTableRegistrationErrors(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.Register(RoleRequest, `SD([0-3])`, 2); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := tbl.Register(RoleRequest, `SD([0-3])`, 2); !errors.Is(err, ErrDuplicatePattern) {
		t.Errorf("duplicate registration error = %v, want ErrDuplicatePattern", err)
	}
	// Same expression under the other role is fine.
	if _, err := tbl.Register(RoleResponse, `SD([0-3])`, 2); err != nil {
		t.Errorf("cross-role registration error = %v", err)
	}
	if _, err := tbl.Register(RoleRequest, `FPL([01])`, 3); !errors.Is(err, ErrCaptureCount) {
		t.Errorf("capture mismatch error = %v, want ErrCaptureCount", err)
	}
}

func TestGreetingRoundTrip(t *testing.T) {
	line := Greeting(DefaultScheme, 7)
	if line != "telnet_client_7: connected\r\n" {
		t.Fatalf("greeting = %q", line)
	}

	scheme, id, ok := ParseGreeting("telnet_client_7: connected")
	if !ok || scheme != "telnet" || id != 7 {
		t.Errorf("parse = %q/%d/%v", scheme, id, ok)
	}
	if _, _, ok := ParseGreeting("telnet_client_x: connected"); ok {
		t.Error("malformed identifier accepted")
	}
	if _, _, ok := ParseGreeting("[QO1]"); ok {
		t.Error("framed payload accepted as greeting")
	}
}

func TestAppendFrame(t *testing.T) {
	got := AppendFrame(nil, RoleRequest, "QO1")
	if string(got) != "[QO1]\r\n" {
		t.Errorf("request frame = %q", got)
	}
	got = AppendFrame(got[:0], RoleResponse, ErrorPayload)
	if string(got) != "(ERROR)\r\n" {
		t.Errorf("error frame = %q", got)
	}
}
