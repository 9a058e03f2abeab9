package model

import "sync"

// Network is the Ethernet interface state. The control channel only
// observes it; the values are populated by the host at startup.
type Network struct {
	mu sync.Mutex

	dhcpEnabled cell[bool]
	sddpEnabled cell[bool]
	macAddress  cell[string] // EUI-48, "AA-BB-CC-DD-EE-FF"
	hostIP      cell[string]
	netmask     cell[string]
	gatewayIP   cell[string]
}

// newNetwork creates the network state.
func newNetwork() *Network {
	return &Network{}
}

// DHCPEnabled returns the DHCPv4 flag.
func (n *Network) DHCPEnabled() (bool, Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dhcpEnabled.get()
}

// SetDHCPEnabled records the DHCPv4 flag.
func (n *Network) SetDHCPEnabled(enabled bool) Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dhcpEnabled.put(enabled)
}

// SDDPEnabled returns the SDDP advertisement flag.
func (n *Network) SDDPEnabled() (bool, Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sddpEnabled.get()
}

// SetSDDPEnabled records the SDDP advertisement flag.
func (n *Network) SetSDDPEnabled(enabled bool) Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sddpEnabled.put(enabled)
}

// MACAddress returns the EUI-48 address.
func (n *Network) MACAddress() (string, Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.macAddress.get()
}

// SetMACAddress records the EUI-48 address.
func (n *Network) SetMACAddress(mac string) Status {
	if mac == "" {
		return StatusInvalidArgument
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.macAddress.put(mac)
}

// HostIP returns the host IPv4 address.
func (n *Network) HostIP() (string, Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hostIP.get()
}

// SetHostIP records the host IPv4 address.
func (n *Network) SetHostIP(ip string) Status {
	if ip == "" {
		return StatusInvalidArgument
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hostIP.put(ip)
}

// Netmask returns the IPv4 netmask.
func (n *Network) Netmask() (string, Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.netmask.get()
}

// SetNetmask records the IPv4 netmask.
func (n *Network) SetNetmask(mask string) Status {
	if mask == "" {
		return StatusInvalidArgument
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.netmask.put(mask)
}

// GatewayIP returns the default gateway address.
func (n *Network) GatewayIP() (string, Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.gatewayIP.get()
}

// SetGatewayIP records the default gateway address.
func (n *Network) SetGatewayIP(ip string) Status {
	if ip == "" {
		return StatusInvalidArgument
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.gatewayIP.put(ip)
}

// applyDefaults initialises the network state to placeholder values.
func (n *Network) applyDefaults() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dhcpEnabled.reset(true)
	n.sddpEnabled.reset(false)
	n.macAddress.reset("00-00-00-00-00-00")
	n.hostIP.reset("0.0.0.0")
	n.netmask.reset("0.0.0.0")
	n.gatewayIP.reset("0.0.0.0")
}
