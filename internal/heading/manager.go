package heading

import (
	"sync"

	"github.com/Duvar1/vakit/internal/qibla"
)

type entry struct {
	fusion      *qibla.Fusion
	deviceID    string
	unsubscribe func()
}

// Manager keeps one compass Fusion per user, fed by the heading stream of
// the device the user last registered.
type Manager struct {
	subscriber *Subscriber

	mu      sync.Mutex
	entries map[int]*entry
}

func NewManager(subscriber *Subscriber) *Manager {
	return &Manager{subscriber: subscriber, entries: make(map[int]*entry)}
}

// Fusion returns the user's compass fusion, creating it and attaching the
// device heading stream on first use. The Qibla bearing is refreshed on
// every call so a location change propagates without re-subscribing.
func (m *Manager) Fusion(userID int, deviceID string, bearingDeg float64) (*qibla.Fusion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[userID]; ok && e.deviceID == deviceID {
		e.fusion.SetBearing(bearingDeg)
		return e.fusion, nil
	}

	if e, ok := m.entries[userID]; ok {
		e.unsubscribe()
		delete(m.entries, userID)
	}

	fusion := qibla.NewFusion(bearingDeg)
	unsubscribe, err := m.subscriber.Listen(deviceID, fusion)
	if err != nil {
		return nil, err
	}
	m.entries[userID] = &entry{fusion: fusion, deviceID: deviceID, unsubscribe: unsubscribe}
	return fusion, nil
}

// Existing returns the user's fusion without creating one.
func (m *Manager) Existing(userID int) (*qibla.Fusion, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		return nil, false
	}
	return e.fusion, true
}

// Drop detaches and forgets the user's fusion.
func (m *Manager) Drop(userID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[userID]; ok {
		e.unsubscribe()
		delete(m.entries, userID)
	}
}
