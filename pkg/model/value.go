package model

// cell is a nullable scalar with "already set" write semantics.
// The zero value is not-initialised.
type cell[T comparable] struct {
	value T
	set   bool
}

// get returns the value, or StatusNotInitialised before the first write.
func (c *cell[T]) get() (T, Status) {
	if !c.set {
		var zero T
		return zero, StatusNotInitialised
	}
	return c.value, StatusSuccess
}

// put stores v, reporting StatusAlreadySet for an equal write.
func (c *cell[T]) put(v T) Status {
	if c.set && c.value == v {
		return StatusAlreadySet
	}
	c.value = v
	c.set = true
	return StatusSuccess
}

// reset stores v unconditionally, marking the cell initialised.
// Used by defaults and backup restore, which bypass already-set
// detection.
func (c *cell[T]) reset(v T) {
	c.value = v
	c.set = true
}

// clear returns the cell to not-initialised.
func (c *cell[T]) clear() {
	var zero T
	c.value = zero
	c.set = false
}

// snapshot returns a pointer to the value, or nil when not initialised.
func (c *cell[T]) snapshot() *T {
	if !c.set {
		return nil
	}
	v := c.value
	return &v
}

// restore applies a snapshot pointer; nil clears the cell.
func (c *cell[T]) restore(p *T) {
	if p == nil {
		c.clear()
		return
	}
	c.reset(*p)
}
