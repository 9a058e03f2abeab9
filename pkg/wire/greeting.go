package wire

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultScheme is the URL scheme of the plain TCP control channel.
const DefaultScheme = "telnet"

// greetingRe matches the confirmation line the server sends on accept,
// without the trailing line ending.
var greetingRe = regexp.MustCompilePOSIX(`^([a-z]+)_client_([0-9]+): connected$`)

// Greeting renders the confirmation line for a newly accepted
// connection, including the trailing line ending. The line is sent
// unframed, before any response frame.
func Greeting(scheme string, id int) string {
	return fmt.Sprintf("%s_client_%d: connected\r\n", scheme, id)
}

// ParseGreeting matches line (without line ending) against the
// confirmation form and returns the scheme and connection identifier.
func ParseGreeting(line string) (scheme string, id int, ok bool) {
	m := greetingRe.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	id, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], id, true
}
