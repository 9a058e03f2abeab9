// Package discovery advertises and locates HLX amplifiers on the local
// network with mDNS.
//
// An amplifier advertises one instance of the _telnet._tcp service with
// TXT records describing the unit (model, zone count, firmware). A
// controller browses the same service type and filters on the TXT
// records. Discovery is a convenience layer; connecting by address
// never requires it.
package discovery
