// Package heading subscribes to the device's orientation stream over MQTT
// and feeds samples into the compass fusion.
package heading

import (
	"encoding/json"
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/qibla"
)

// sample is the JSON payload the device publishes per sensor event.
// Status "denied" or "unsupported" means the device cannot provide
// headings at all; the compass must then show unavailable, not north.
type sample struct {
	HeadingDeg float64 `json:"heading"`
	Status     string  `json:"status,omitempty"`
}

// Subscriber routes one device's heading topic into a Fusion.
type Subscriber struct {
	client mqtt.Client

	mu     sync.Mutex
	topics map[string]struct{}
}

func NewSubscriber(client mqtt.Client) *Subscriber {
	return &Subscriber{client: client, topics: make(map[string]struct{})}
}

func headingTopic(deviceID string) string {
	return fmt.Sprintf("devices/%s/heading", deviceID)
}

// Listen subscribes to the device's heading topic and pushes every sample
// into the fusion. The returned handle unsubscribes; callers must invoke
// it on teardown or the listener leaks.
func (s *Subscriber) Listen(deviceID string, fusion *qibla.Fusion) (unsubscribe func(), err error) {
	topic := headingTopic(deviceID)

	s.mu.Lock()
	if _, exists := s.topics[topic]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("already listening on %s", topic)
	}
	s.topics[topic] = struct{}{}
	s.mu.Unlock()

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		var smp sample
		if err := json.Unmarshal(msg.Payload(), &smp); err != nil {
			log.Warn().Err(err).Str("topic", msg.Topic()).Msg("dropping malformed heading sample")
			return
		}
		if smp.Status == "denied" || smp.Status == "unsupported" {
			fusion.MarkUnavailable()
			return
		}
		fusion.Update(smp.HeadingDeg)
	}

	token := s.client.Subscribe(topic, 0, handler)
	token.Wait()
	if token.Error() != nil {
		s.mu.Lock()
		delete(s.topics, topic)
		s.mu.Unlock()
		return nil, fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	log.Info().Str("topic", topic).Msg("listening for heading samples")

	return func() {
		if token := s.client.Unsubscribe(topic); token.Wait() && token.Error() != nil {
			log.Warn().Err(token.Error()).Str("topic", topic).Msg("unsubscribe failed")
		}
		s.mu.Lock()
		delete(s.topics, topic)
		s.mu.Unlock()
	}, nil
}
