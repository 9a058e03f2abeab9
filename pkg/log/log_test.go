package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEventRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "payload event",
			event: Event{
				Timestamp:    time.Now().UTC(),
				ConnectionID: "conn-1",
				Direction:    DirectionIn,
				Layer:        LayerWire,
				Category:     CategoryMessage,
				LocalRole:    RoleServer,
				PeerID:       3,
				Payload: &PayloadEvent{
					Role:    PayloadRequest,
					Line:    "VO3U",
					Matched: "zone-volume-up",
				},
			},
		},
		{
			name: "state change event",
			event: Event{
				Timestamp:    time.Now().UTC(),
				ConnectionID: "conn-2",
				Direction:    DirectionOut,
				Layer:        LayerTransport,
				Category:     CategoryState,
				StateChange: &StateChangeEvent{
					Entity:   StateEntityConnection,
					OldState: "CONNECTED",
					NewState: "CONFIRMED",
				},
			},
		},
		{
			name: "error event",
			event: Event{
				Timestamp:    time.Now().UTC(),
				ConnectionID: "conn-3",
				Layer:        LayerWire,
				Category:     CategoryError,
				Error: &ErrorEventData{
					Layer:   LayerWire,
					Message: "parse failure",
					Context: "QZ99",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}

			decoded, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}

			if decoded.ConnectionID != tt.event.ConnectionID {
				t.Errorf("ConnectionID = %q, want %q", decoded.ConnectionID, tt.event.ConnectionID)
			}
			if decoded.Category != tt.event.Category {
				t.Errorf("Category = %v, want %v", decoded.Category, tt.event.Category)
			}
			if tt.event.Payload != nil {
				if decoded.Payload == nil {
					t.Fatal("Payload missing after round trip")
				}
				if decoded.Payload.Line != tt.event.Payload.Line {
					t.Errorf("Payload.Line = %q, want %q", decoded.Payload.Line, tt.event.Payload.Line)
				}
			}
			if tt.event.StateChange != nil {
				if decoded.StateChange == nil {
					t.Fatal("StateChange missing after round trip")
				}
				if decoded.StateChange.NewState != tt.event.StateChange.NewState {
					t.Errorf("NewState = %q, want %q", decoded.StateChange.NewState, tt.event.StateChange.NewState)
				}
			}
		})
	}
}

func TestFileLoggerAndReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "protocol.cborlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	events := []Event{
		{Timestamp: time.Now().UTC(), ConnectionID: "a", Layer: LayerWire, Category: CategoryMessage,
			Payload: &PayloadEvent{Role: PayloadRequest, Line: "QO1"}},
		{Timestamp: time.Now().UTC(), ConnectionID: "b", Layer: LayerWire, Category: CategoryMessage,
			Payload: &PayloadEvent{Role: PayloadResponse, Line: "VO1-10"}},
		{Timestamp: time.Now().UTC(), ConnectionID: "a", Layer: LayerTransport, Category: CategoryHandshake},
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Logging after close is ignored.
	logger.Log(events[0])

	reader, err := NewFilteredReader(path, Filter{ConnectionID: "a"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var count int
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ev.ConnectionID != "a" {
			t.Errorf("filter leaked event for connection %q", ev.ConnectionID)
		}
		count++
	}
	if count != 2 {
		t.Errorf("filtered event count = %d, want 2", count)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestMultiLogger(t *testing.T) {
	var a, b recorder
	m := NewMultiLogger(&a, &b)

	m.Log(Event{ConnectionID: "x"})
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("event counts = %d/%d, want 1/1", len(a.events), len(b.events))
	}
}

// recorder is a test logger that records events.
type recorder struct {
	events []Event
}

func (r *recorder) Log(e Event) { r.events = append(r.events, e) }
