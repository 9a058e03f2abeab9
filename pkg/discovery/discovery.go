package discovery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ServiceType is the advertised mDNS service type. The control
	// plane speaks the telnet scheme, so the standard telnet service
	// type is used.
	ServiceType = "_telnet._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// MaxInstanceNameLen bounds the advertised instance name.
	MaxInstanceNameLen = 63
)

// TXT record keys.
const (
	txtKeyModel    = "md"
	txtKeyZones    = "zc"
	txtKeyFirmware = "fw"
)

// ErrNotFound is returned when a lookup finds no matching amplifier.
var ErrNotFound = errors.New("amplifier not found")

// AmplifierInfo describes one advertised amplifier.
type AmplifierInfo struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// Model is the unit's model designation.
	Model string

	// Zones is the number of zones in the chassis.
	Zones int

	// Firmware is the firmware revision string.
	Firmware string

	// Port is the control port.
	Port int
}

// Service is a located amplifier together with its addresses.
type Service struct {
	AmplifierInfo

	// Host is the advertised host name.
	Host string

	// Addresses are the resolved IP addresses as strings.
	Addresses []string
}

// Address returns "host:port" for the first resolved address, or the
// empty string when nothing resolved.
func (s *Service) Address() string {
	if len(s.Addresses) == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", s.Addresses[0], s.Port)
}

// encodeTXT renders the info's TXT records.
func encodeTXT(info AmplifierInfo) []string {
	return []string{
		txtKeyModel + "=" + info.Model,
		txtKeyZones + "=" + strconv.Itoa(info.Zones),
		txtKeyFirmware + "=" + info.Firmware,
	}
}

// decodeTXT parses TXT records into the info fields they carry.
// Unknown keys are ignored; missing keys leave zero values.
func decodeTXT(records []string) AmplifierInfo {
	var info AmplifierInfo
	for _, record := range records {
		key, value, ok := strings.Cut(record, "=")
		if !ok {
			continue
		}
		switch key {
		case txtKeyModel:
			info.Model = value
		case txtKeyZones:
			if n, err := strconv.Atoi(value); err == nil {
				info.Zones = n
			}
		case txtKeyFirmware:
			info.Firmware = value
		}
	}
	return info
}
