package model

import "sync"

// FrontPanel is the chassis display and key-lock state.
type FrontPanel struct {
	mu sync.Mutex

	brightness cell[int]
	locked     cell[bool]
}

// newFrontPanel creates the front panel state.
func newFrontPanel() *FrontPanel {
	return &FrontPanel{}
}

// Brightness returns the display brightness (0..BrightnessMax).
func (f *FrontPanel) Brightness() (int, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.brightness.get()
}

// SetBrightness sets the display brightness.
func (f *FrontPanel) SetBrightness(brightness int) Status {
	if brightness < 0 || brightness > BrightnessMax {
		return StatusOutOfRange
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.brightness.put(brightness)
}

// Locked returns the key-lock state.
func (f *FrontPanel) Locked() (bool, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locked.get()
}

// SetLocked sets the key-lock state.
func (f *FrontPanel) SetLocked(locked bool) Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locked.put(locked)
}

// applyDefaults initialises the front panel to its reset values.
func (f *FrontPanel) applyDefaults() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brightness.reset(BrightnessMax)
	f.locked.reset(false)
}

// snapshot captures the front panel state for persistence.
func (f *FrontPanel) snapshot() FrontPanelState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FrontPanelState{
		Brightness: f.brightness.snapshot(),
		Locked:     f.locked.snapshot(),
	}
}

// restore applies a persisted front panel state.
func (f *FrontPanel) restore(s FrontPanelState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brightness.restore(s.Brightness)
	f.locked.restore(s.Locked)
}
