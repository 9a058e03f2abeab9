package wire

// Telnet command bytes (RFC 854/855).
const (
	telnetSE   = 240
	telnetSB   = 250
	telnetWill = 251
	telnetWont = 252
	telnetDo   = 253
	telnetDont = 254
	telnetIAC  = 255
)

// telnetState tracks the filter position inside an IAC sequence.
type telnetState uint8

const (
	telnetData telnetState = iota
	telnetSawIAC
	telnetSawVerb
	telnetInSubneg
	telnetSubnegIAC
)

// TelnetFilter strips telnet option negotiation from a byte stream.
// Every WILL is answered with DONT and every DO with WONT, so the peer
// settles on a plain eight-bit channel. Subnegotiation blocks are
// consumed without reply. The zero value is ready to use.
type TelnetFilter struct {
	state telnetState
	verb  byte
}

// Filter separates data bytes from option negotiation in p. It returns
// the data bytes with all IAC sequences removed, and the negotiation
// replies that must be written back to the peer. Sequences split across
// calls are handled.
func (t *TelnetFilter) Filter(p []byte) (data, replies []byte) {
	data = make([]byte, 0, len(p))
	for _, b := range p {
		switch t.state {
		case telnetData:
			if b == telnetIAC {
				t.state = telnetSawIAC
				continue
			}
			data = append(data, b)
		case telnetSawIAC:
			switch b {
			case telnetIAC:
				// Escaped data byte.
				data = append(data, b)
				t.state = telnetData
			case telnetWill, telnetWont, telnetDo, telnetDont:
				t.verb = b
				t.state = telnetSawVerb
			case telnetSB:
				t.state = telnetInSubneg
			default:
				// Two-byte command, no option byte follows.
				t.state = telnetData
			}
		case telnetSawVerb:
			switch t.verb {
			case telnetWill:
				replies = append(replies, telnetIAC, telnetDont, b)
			case telnetDo:
				replies = append(replies, telnetIAC, telnetWont, b)
			}
			t.state = telnetData
		case telnetInSubneg:
			if b == telnetIAC {
				t.state = telnetSubnegIAC
			}
		case telnetSubnegIAC:
			if b == telnetSE {
				t.state = telnetData
			} else {
				t.state = telnetInSubneg
			}
		}
	}
	return data, replies
}
