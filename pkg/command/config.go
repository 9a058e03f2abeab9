package command

import "fmt"

// ConfigOp identifies one of the four configuration control commands.
type ConfigOp uint8

const (
	ConfigOpLoad ConfigOp = iota
	ConfigOpSave
	ConfigOpReset
	ConfigOpQuery
)

// Tag returns the wire tag of the operation.
func (o ConfigOp) Tag() string {
	switch o {
	case ConfigOpLoad:
		return "LOAD"
	case ConfigOpSave:
		return "SAVE"
	case ConfigOpReset:
		return "RESET"
	case ConfigOpQuery:
		return "QX"
	default:
		return fmt.Sprintf("CONFIG_OP(%d)", uint8(o))
	}
}

// String returns the wire tag.
func (o ConfigOp) String() string { return o.Tag() }

// ConfigOpFromTag parses a wire tag back to the operation.
func ConfigOpFromTag(tag string) (ConfigOp, error) {
	switch tag {
	case "LOAD":
		return ConfigOpLoad, nil
	case "SAVE":
		return ConfigOpSave, nil
	case "RESET":
		return ConfigOpReset, nil
	case "QX":
		return ConfigOpQuery, nil
	default:
		return 0, fmt.Errorf("unknown configuration operation %q", tag)
	}
}

// Lifecycle notification payloads for one configuration operation.

// ConfigWill renders the announcement payload, for example LOADW.
func ConfigWill(op ConfigOp) string { return op.Tag() + "W" }

// ConfigProgress renders a progress payload with a truncated integer
// percentage, for example SAVEP50.
func ConfigProgress(op ConfigOp, numerator, denominator int) string {
	pct := 0
	if denominator > 0 {
		pct = numerator * 100 / denominator
	}
	return fmt.Sprintf("%sP%d", op.Tag(), pct)
}

// ConfigDid renders the success payload, for example RESETD.
func ConfigDid(op ConfigOp) string { return op.Tag() + "D" }

// ConfigDidNot renders the failure payload, for example RESETE.
func ConfigDidNot(op ConfigOp) string { return op.Tag() + "E" }
