package command

import (
	"fmt"
	"strconv"

	"github.com/hlx-protocol/hlx-go/pkg/model"
)

// Balance travels on the wire in a discontinuous tagged form, L<1..80>
// for left bias, C for centre, R<1..80> for right bias, while the model
// keeps a continuous signed range where negative is left. The two
// functions below are a bijection over [-80, +80].

// FormatBalance renders a model balance value in the wire form.
func FormatBalance(balance int) (string, error) {
	switch {
	case balance < -model.BalanceMax || balance > model.BalanceMax:
		return "", fmt.Errorf("balance %d outside [%d, %d]",
			balance, -model.BalanceMax, model.BalanceMax)
	case balance == 0:
		return "C", nil
	case balance < 0:
		return "L" + strconv.Itoa(-balance), nil
	default:
		return "R" + strconv.Itoa(balance), nil
	}
}

// ParseBalance converts the wire form back to the model value.
func ParseBalance(s string) (int, error) {
	if s == "C" {
		return 0, nil
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("malformed balance %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > model.BalanceMax {
		return 0, fmt.Errorf("malformed balance %q", s)
	}
	switch s[0] {
	case 'L':
		return -n, nil
	case 'R':
		return n, nil
	default:
		return 0, fmt.Errorf("malformed balance %q", s)
	}
}
