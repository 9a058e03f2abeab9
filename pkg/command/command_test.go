package command

import (
	"testing"

	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

func requestTable(t *testing.T) *wire.Table {
	t.Helper()
	tbl := wire.NewTable()
	for _, f := range RequestForms {
		if _, err := tbl.Register(wire.RoleRequest, f.Expr, f.Captures); err != nil {
			t.Fatalf("registering %q: %v", f.Expr, err)
		}
	}
	return tbl
}

func responseTable(t *testing.T) *wire.Table {
	t.Helper()
	tbl := wire.NewTable()
	for _, f := range ResponseForms {
		if _, err := tbl.Register(wire.RoleResponse, f.Expr, f.Captures); err != nil {
			t.Fatalf("registering %q: %v", f.Expr, err)
		}
	}
	return tbl
}

// Every composed request must be recognised by the request table, and
// its completion form must be a registered response form.
func TestComposedRequestsDispatch(t *testing.T) {
	balance, err := SetZoneBalance(3, -40)
	if err != nil {
		t.Fatalf("SetZoneBalance: %v", err)
	}

	requests := []Request{
		QueryZone(1),
		QueryPreset(4),
		QueryFavorite(10),
		QueryInfrared(),
		QueryBrightness(),
		QueryPanelLock(),
		QueryNetwork(),
		SetZoneVolume(3, -10),
		ZoneVolumeUp(3),
		ZoneVolumeDown(24),
		SetGroupVolume(2, 0),
		GroupVolumeUp(2),
		SetZoneMuted(3, true),
		SetZoneMuted(3, false),
		SetGroupMuted(2, true),
		SetZoneVolumeLocked(5, true),
		SetZoneSource(3, 2),
		SetGroupSource(2, 4),
		SetZoneName(3, "Patio"),
		SetGroupName(2, "Downstairs"),
		SetSourceName(1, "Kitchen"),
		SetPresetName(4, "Rock"),
		SetFavoriteName(1, "Morning"),
		balance,
		SetZoneTone(3, 5, -2),
		SetZoneSoundMode(3, model.SoundModeTone),
		SetZoneBand(3, 7, -3),
		ZoneBandUp(3, 7),
		ZoneBandDown(3, 10),
		SetZonePreset(3, 4),
		SetPresetBand(4, 7, -3),
		PresetBandUp(4, 1),
		SetZoneHighpass(3, 8000),
		SetZoneLowpass(3, 100),
		GroupAddZone(2, 5),
		GroupRemoveZone(2, 5),
		GroupClearZones(2),
		SetBrightness(3),
		SetPanelLocked(true),
		SetInfraredDisabled(false),
		ConfigLoad(),
		ConfigSave(),
		ConfigReset(),
		ConfigQuery(),
	}

	reqTbl := requestTable(t)
	respTbl := responseTable(t)

	for _, r := range requests {
		t.Run(r.Payload, func(t *testing.T) {
			if _, ok := reqTbl.Lookup(wire.RoleRequest, r.Payload); !ok {
				t.Errorf("request %q not dispatched", r.Payload)
			}
			if r.Response.Captures < 1 {
				t.Fatalf("request %q has no completion form", r.Payload)
			}
			if _, err := respTbl.Register(wire.RoleResponse, r.Response.Expr, r.Response.Captures); err == nil {
				t.Errorf("completion form %q of %q is not a registered response form",
					r.Response.Expr, r.Payload)
			}
		})
	}
}

func TestRequestCaptureRoundTrip(t *testing.T) {
	tbl := requestTable(t)

	tests := []struct {
		payload string
		check   func(t *testing.T, m *wire.Match)
	}{
		{SetZoneVolume(3, -10).Payload, func(t *testing.T, m *wire.Match) {
			zone, err := CaptureInt("VO3S-10", m, 1)
			if err != nil || zone != 3 {
				t.Errorf("zone = %d/%v", zone, err)
			}
			level, err := CaptureInt("VO3S-10", m, 2)
			if err != nil || level != -10 {
				t.Errorf("level = %d/%v", level, err)
			}
		}},
		{ZoneVolumeUp(3).Payload, func(t *testing.T, m *wire.Match) {
			delta, err := CaptureDelta("VO3U", m, 2)
			if err != nil || delta != 1 {
				t.Errorf("delta = %d/%v", delta, err)
			}
		}},
		{SetZoneMuted(3, true).Payload, func(t *testing.T, m *wire.Match) {
			muted, err := CaptureMuteTag("VMO3M", m, 2)
			if err != nil || !muted {
				t.Errorf("muted = %v/%v", muted, err)
			}
		}},
		{SetPresetBand(4, 7, -3).Payload, func(t *testing.T, m *wire.Match) {
			p := "EP4B7L-3"
			preset, _ := CaptureInt(p, m, 1)
			band, _ := CaptureInt(p, m, 2)
			level, _ := CaptureInt(p, m, 3)
			if preset != 4 || band != 7 || level != -3 {
				t.Errorf("captures = %d/%d/%d", preset, band, level)
			}
		}},
		{SetZoneName(3, "Kitchen & Dining Area").Payload, func(t *testing.T, m *wire.Match) {
			p := `NO3"Kitchen & Dinin"`
			if got := CaptureName(p, m, 2); got != "Kitchen & Dinin" {
				t.Errorf("name = %q", got)
			}
		}},
		{SetZoneSoundMode(3, model.SoundModeLowpass).Payload, func(t *testing.T, m *wire.Match) {
			mode, err := CaptureSoundMode("SMO35", m, 2)
			if err != nil || mode != model.SoundModeLowpass {
				t.Errorf("mode = %v/%v", mode, err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			m, ok := tbl.Lookup(wire.RoleRequest, tt.payload)
			if !ok {
				t.Fatalf("%q not dispatched", tt.payload)
			}
			tt.check(t, m)
		})
	}
}

func TestBalanceBijection(t *testing.T) {
	for b := -model.BalanceMax; b <= model.BalanceMax; b++ {
		tag, err := FormatBalance(b)
		if err != nil {
			t.Fatalf("FormatBalance(%d): %v", b, err)
		}
		got, err := ParseBalance(tag)
		if err != nil {
			t.Fatalf("ParseBalance(%q): %v", tag, err)
		}
		if got != b {
			t.Errorf("round trip %d -> %q -> %d", b, tag, got)
		}
	}

	// Centre is a distinguished form.
	if tag, _ := FormatBalance(0); tag != "C" {
		t.Errorf("centre tag = %q, want C", tag)
	}
	if _, err := FormatBalance(model.BalanceMax + 1); err == nil {
		t.Error("out-of-range balance formatted")
	}
	for _, bad := range []string{"", "L", "L0", "R81", "X5", "L-3"} {
		if _, err := ParseBalance(bad); err == nil {
			t.Errorf("ParseBalance(%q) accepted", bad)
		}
	}
}

func TestQuoteNameTruncates(t *testing.T) {
	if got := QuoteName("Kitchen & Dining Area"); got != `"Kitchen & Dinin"` {
		t.Errorf("QuoteName = %q", got)
	}
	if got := QuoteName("Den"); got != `"Den"` {
		t.Errorf("QuoteName = %q", got)
	}
}

func TestVolumeLevelDisambiguation(t *testing.T) {
	tbl := responseTable(t)

	tests := []struct {
		payload string
		zone    int
		level   int
	}{
		{"VO3-10", 3, -10},
		{"VO30", 3, 0},
		{"VO240", 24, 0},
		{"VO10-80", 10, -80},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			m, ok := tbl.Lookup(wire.RoleResponse, tt.payload)
			if !ok {
				t.Fatalf("%q not matched", tt.payload)
			}
			zone, _ := CaptureInt(tt.payload, m, 1)
			level, _ := CaptureInt(tt.payload, m, 2)
			if zone != tt.zone || level != tt.level {
				t.Errorf("parsed %d/%d, want %d/%d", zone, level, tt.zone, tt.level)
			}
		})
	}
}

func TestConfigLifecycleForms(t *testing.T) {
	tbl := responseTable(t)

	if got := ConfigWill(ConfigOpSave); got != "SAVEW" {
		t.Errorf("will = %q", got)
	}
	if got := ConfigProgress(ConfigOpSave, 1, 2); got != "SAVEP50" {
		t.Errorf("progress = %q", got)
	}
	if got := ConfigProgress(ConfigOpLoad, 1, 3); got != "LOADP33" {
		t.Errorf("truncated progress = %q", got)
	}
	if got := ConfigDid(ConfigOpReset); got != "RESETD" {
		t.Errorf("did = %q", got)
	}
	if got := ConfigDidNot(ConfigOpQuery); got != "QXE" {
		t.Errorf("did-not = %q", got)
	}

	for _, payload := range []string{"SAVEW", "SAVEP0", "SAVEP100", "SAVED", "SAVEE"} {
		if _, ok := tbl.Lookup(wire.RoleResponse, payload); !ok {
			t.Errorf("lifecycle payload %q not matched", payload)
		}
	}

	op, err := ConfigOpFromTag("RESET")
	if err != nil || op != ConfigOpReset {
		t.Errorf("ConfigOpFromTag = %v/%v", op, err)
	}
}
