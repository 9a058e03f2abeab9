package discovery

import (
	"testing"
)

func TestTXTRoundTrip(t *testing.T) {
	info := AmplifierInfo{
		Model:    "HLX-1632",
		Zones:    16,
		Firmware: "2.14",
	}

	decoded := decodeTXT(encodeTXT(info))
	if decoded != info {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info)
	}
}

func TestDecodeTXTIgnoresUnknownKeys(t *testing.T) {
	records := []string{
		"md=HLX-816",
		"zc=8",
		"fw=1.03",
		"vendor=acme",
		"malformed",
	}

	info := decodeTXT(records)
	if info.Model != "HLX-816" {
		t.Errorf("model: got %q, want %q", info.Model, "HLX-816")
	}
	if info.Zones != 8 {
		t.Errorf("zones: got %d, want 8", info.Zones)
	}
	if info.Firmware != "1.03" {
		t.Errorf("firmware: got %q, want %q", info.Firmware, "1.03")
	}
}

func TestDecodeTXTBadZoneCount(t *testing.T) {
	info := decodeTXT([]string{"zc=many"})
	if info.Zones != 0 {
		t.Errorf("zones: got %d, want 0", info.Zones)
	}
}

func TestServiceAddress(t *testing.T) {
	tests := []struct {
		name    string
		service Service
		want    string
	}{
		{
			name: "first address wins",
			service: Service{
				AmplifierInfo: AmplifierInfo{Port: 23},
				Addresses:     []string{"192.168.1.40", "fe80::1"},
			},
			want: "192.168.1.40:23",
		},
		{
			name:    "no addresses",
			service: Service{AmplifierInfo: AmplifierInfo{Port: 23}},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.service.Address(); got != tt.want {
				t.Errorf("Address() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeAddresses(t *testing.T) {
	got := mergeAddresses(
		[]string{"192.168.1.40", "fe80::1"},
		[]string{"fe80::1", "10.0.0.5"},
	)
	want := []string{"192.168.1.40", "fe80::1", "10.0.0.5"}
	if len(got) != len(want) {
		t.Fatalf("merged %d addresses, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("address %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
