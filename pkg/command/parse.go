package command

import (
	"fmt"
	"strconv"

	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// Capture helpers convert the byte offsets of a dispatch match into
// typed arguments. Handlers call these with the capture index declared
// by the matched form.

// CaptureInt parses capture group i as a decimal integer.
func CaptureInt(payload string, m *wire.Match, i int) (int, error) {
	s := m.Capture(payload, i)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("capture %d %q: not a decimal", i, s)
	}
	return n, nil
}

// CaptureBool parses capture group i as a 0/1 flag.
func CaptureBool(payload string, m *wire.Match, i int) (bool, error) {
	switch m.Capture(payload, i) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("capture %d %q: not a flag", i, m.Capture(payload, i))
	}
}

// CaptureMuteTag parses an M/U mute tag as the muted flag.
func CaptureMuteTag(payload string, m *wire.Match, i int) (bool, error) {
	switch m.Capture(payload, i) {
	case "M":
		return true, nil
	case "U":
		return false, nil
	default:
		return false, fmt.Errorf("capture %d %q: not a mute tag", i, m.Capture(payload, i))
	}
}

// CaptureDelta parses a U/D adjustment tag as +1/-1.
func CaptureDelta(payload string, m *wire.Match, i int) (int, error) {
	switch m.Capture(payload, i) {
	case "U":
		return 1, nil
	case "D":
		return -1, nil
	default:
		return 0, fmt.Errorf("capture %d %q: not an adjustment tag", i, m.Capture(payload, i))
	}
}

// CaptureBalance parses a tagged balance capture into the signed model
// range.
func CaptureBalance(payload string, m *wire.Match, i int) (int, error) {
	return ParseBalance(m.Capture(payload, i))
}

// CaptureSoundMode parses a sound mode digit.
func CaptureSoundMode(payload string, m *wire.Match, i int) (model.SoundMode, error) {
	n, err := CaptureInt(payload, m, i)
	if err != nil {
		return 0, err
	}
	mode := model.SoundMode(n)
	if !mode.Valid() {
		return 0, fmt.Errorf("capture %d: sound mode %d out of range", i, n)
	}
	return mode, nil
}

// CaptureName returns the quoted-name capture as-is. The quotes are
// outside the capture group; byte validation is the model's job.
func CaptureName(payload string, m *wire.Match, i int) string {
	return m.Capture(payload, i)
}

// CaptureConfigOp parses the operation tag of a lifecycle notification.
func CaptureConfigOp(payload string, m *wire.Match, i int) (ConfigOp, error) {
	return ConfigOpFromTag(m.Capture(payload, i))
}
