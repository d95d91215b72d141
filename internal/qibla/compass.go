package qibla

import (
	"sync"

	"github.com/Duvar1/vakit/internal/model"
)

// Fusion combines a fixed qibla bearing with a stream of raw heading
// samples. Samples arrive on sensor callbacks at whatever rate the device
// delivers them; the latest sample wins and no smoothing is applied.
type Fusion struct {
	mu          sync.Mutex
	bearing     float64
	heading     float64
	offset      float64
	available   bool
	unsupported bool
	subs        map[int]func(model.CompassState)
	nextSub     int
}

// NewFusion creates a fusion for the given target bearing with a zero
// calibration offset and no heading yet.
func NewFusion(bearingDeg float64) *Fusion {
	return &Fusion{
		bearing: normalizeDeg(bearingDeg),
		subs:    make(map[int]func(model.CompassState)),
	}
}

// SetBearing replaces the target bearing, e.g. after a location refresh.
func (f *Fusion) SetBearing(bearingDeg float64) {
	f.mu.Lock()
	f.bearing = normalizeDeg(bearingDeg)
	state := f.stateLocked()
	subs := f.snapshotSubsLocked()
	f.mu.Unlock()
	notify(subs, state)
}

// Update feeds one raw heading sample and returns the fused state.
func (f *Fusion) Update(headingDeg float64) model.CompassState {
	f.mu.Lock()
	f.heading = normalizeDeg(headingDeg)
	f.available = true
	f.unsupported = false
	state := f.stateLocked()
	subs := f.snapshotSubsLocked()
	f.mu.Unlock()
	notify(subs, state)
	return state
}

// MarkUnavailable records that the heading source is gone (no sensor or
// permission denied). Subscribers see Available=false.
func (f *Fusion) MarkUnavailable() {
	f.mu.Lock()
	f.available = false
	f.unsupported = true
	state := f.stateLocked()
	subs := f.snapshotSubsLocked()
	f.mu.Unlock()
	notify(subs, state)
}

// Unsupported reports whether the heading source declared itself gone, as
// opposed to simply not having delivered a sample yet.
func (f *Fusion) Unsupported() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unsupported
}

// ApplyCalibration nudges the calibration offset by exactly +180° mod 360,
// the coarse flip for devices reporting magnetic north in reverse. Calling
// it twice restores the original offset. It never re-zeroes to the current
// heading.
func (f *Fusion) ApplyCalibration() float64 {
	f.mu.Lock()
	f.offset = normalizeDeg(f.offset + 180)
	offset := f.offset
	state := f.stateLocked()
	subs := f.snapshotSubsLocked()
	f.mu.Unlock()
	notify(subs, state)
	return offset
}

// State returns the current fused state.
func (f *Fusion) State() model.CompassState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

// Subscribe registers a callback invoked on every state change and returns
// its unsubscribe handle. Dropping the handle without calling it leaks the
// listener, which is exactly the bug this design closes off.
func (f *Fusion) Subscribe(fn func(model.CompassState)) (unsubscribe func()) {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *Fusion) stateLocked() model.CompassState {
	corrected := normalizeDeg(f.heading + f.offset)
	return model.CompassState{
		RawHeadingDeg:        f.heading,
		CalibrationOffsetDeg: f.offset,
		DialRotationDeg:      normalizeDeg(360 - corrected),
		PointerRotationDeg:   normalizeDeg(f.bearing - corrected),
		Available:            f.available,
	}
}

func (f *Fusion) snapshotSubsLocked() []func(model.CompassState) {
	out := make([]func(model.CompassState), 0, len(f.subs))
	for _, fn := range f.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(model.CompassState), state model.CompassState) {
	for _, fn := range subs {
		fn(state)
	}
}
