package model

// Status is the result of a model read or mutation.
type Status uint8

const (
	// StatusSuccess indicates the value changed (or the read succeeded).
	StatusSuccess Status = 0

	// StatusAlreadySet indicates a write equal to the current value.
	// This is a non-error sentinel: the model state is exactly what the
	// caller asked for, but nothing changed.
	StatusAlreadySet Status = 1

	// StatusNotInitialised indicates a read before the first write.
	StatusNotInitialised Status = 2

	// StatusOutOfRange indicates an identifier or value outside its
	// declared limits.
	StatusOutOfRange Status = 3

	// StatusNotFound indicates a lookup miss (name lookup, member
	// removal of an absent zone).
	StatusNotFound Status = 4

	// StatusInvalidArgument indicates a malformed argument (non-printable
	// name, empty name, unknown enum value).
	StatusInvalidArgument Status = 5
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusAlreadySet:
		return "ALREADY_SET"
	case StatusNotInitialised:
		return "NOT_INITIALISED"
	case StatusOutOfRange:
		return "OUT_OF_RANGE"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// OK returns true for the two non-error outcomes of a mutation.
func (s Status) OK() bool {
	return s == StatusSuccess || s == StatusAlreadySet
}

// Changed returns true if the mutation altered state.
func (s Status) Changed() bool {
	return s == StatusSuccess
}
