package reminder

import (
	"sync"

	"github.com/Duvar1/vakit/internal/notify"
)

// NotifierFactory builds the notifier that delivers alarm commands to one device.
type NotifierFactory func(deviceID string) notify.Notifier

// Registry hands out one Scheduler per user. A user's scheduler is bound to
// the device they last registered; re-registering under a new device id
// replaces the scheduler so stale handles never leak across devices.
type Registry struct {
	mu         sync.Mutex
	factory    NotifierFactory
	opts       []Option
	schedulers map[int]*Scheduler
	devices    map[int]string
}

func NewRegistry(factory NotifierFactory, opts ...Option) *Registry {
	return &Registry{
		factory:    factory,
		opts:       opts,
		schedulers: make(map[int]*Scheduler),
		devices:    make(map[int]string),
	}
}

// For returns the scheduler for the user, creating or rebinding it as needed.
func (r *Registry) For(userID int, deviceID string) *Scheduler {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.schedulers[userID]; ok && r.devices[userID] == deviceID {
		return s
	}

	s := NewScheduler(r.factory(deviceID), r.opts...)
	r.schedulers[userID] = s
	r.devices[userID] = deviceID
	return s
}
