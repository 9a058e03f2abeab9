package subscription

import (
	"testing"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(func(Event) { order = append(order, 1) })
	bus.Subscribe(func(Event) { order = append(order, 2) })
	bus.Subscribe(func(Event) { order = append(order, 3) })

	bus.Publish(ZoneVolumeChanged{Zone: 3, Level: -10})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v", order)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	var got []Event
	id := bus.Subscribe(func(ev Event) { got = append(got, ev) })

	bus.Publish(ZoneMuteChanged{Zone: 2, Muted: true})
	bus.Unsubscribe(id)
	bus.Publish(ZoneMuteChanged{Zone: 2, Muted: false})

	if len(got) != 1 {
		t.Fatalf("received %d events, want 1", len(got))
	}
	if ev, ok := got[0].(ZoneMuteChanged); !ok || !ev.Muted {
		t.Errorf("event = %+v", got[0])
	}
}

func TestSubscribeDuringPublishAppliesNextEvent(t *testing.T) {
	bus := NewBus()

	var lateCount int
	bus.Subscribe(func(Event) {
		if lateCount == 0 {
			bus.Subscribe(func(Event) { lateCount++ })
		}
	})

	bus.Publish(BrightnessChanged{Brightness: 2})
	if lateCount != 0 {
		t.Fatalf("late subscriber saw the event it was added during")
	}
	bus.Publish(BrightnessChanged{Brightness: 3})
	// The inner subscribe runs again on the second publish, so only the
	// subscriber added during the first event counts here.
	if lateCount == 0 {
		t.Error("late subscriber never received a subsequent event")
	}
}

func TestUnsubscribeUnknownIDIsNoop(t *testing.T) {
	bus := NewBus()
	bus.Unsubscribe(42)

	fired := false
	bus.Subscribe(func(Event) { fired = true })
	bus.Publish(PanelLockChanged{Locked: true})
	if !fired {
		t.Error("subscriber not delivered after unknown unsubscribe")
	}
}

func TestTypedEventSwitch(t *testing.T) {
	bus := NewBus()

	var zones []int
	bus.Subscribe(func(ev Event) {
		switch e := ev.(type) {
		case ZoneVolumeChanged:
			zones = append(zones, e.Zone)
		case ZoneSourceChanged:
			zones = append(zones, e.Zone)
		}
	})

	bus.Publish(ZoneVolumeChanged{Zone: 1, Level: -20})
	bus.Publish(InfraredChanged{Disabled: true})
	bus.Publish(ZoneSourceChanged{Zone: 4, Source: 2})

	if len(zones) != 2 || zones[0] != 1 || zones[1] != 4 {
		t.Errorf("zones = %v", zones)
	}
}
