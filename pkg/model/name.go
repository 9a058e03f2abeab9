package model

// validateName checks that a name is non-empty printable ASCII within
// MaxNameLength bytes. Callers that accept over-long external input
// truncate with TruncateName before validation.
func validateName(name string) Status {
	if name == "" {
		return StatusInvalidArgument
	}
	if len(name) > MaxNameLength {
		return StatusInvalidArgument
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] > 0x7e {
			return StatusInvalidArgument
		}
	}
	return StatusSuccess
}

// TruncateName clips over-long wire input to fit the device's
// MaxNameLength byte name buffer, whose last byte is the terminator,
// so MaxNameLength-1 bytes of payload survive. Names are ASCII on the
// wire, so byte truncation never splits a character.
func TruncateName(name string) string {
	if len(name) >= MaxNameLength {
		return name[:MaxNameLength-1]
	}
	return name
}
