package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// MQTTNotifier pushes alarm commands to the companion device over MQTT.
// The device acknowledges nothing synchronously, so the pending set is
// mirrored locally; a schedule command that cannot be published counts as
// a permission failure and surfaces as SchedulingDenied.
//
// The mirror is process memory only. After a restart it is empty even
// though the device may still hold alarms; POST /prayers/reminders/sync
// rebuilds both sides from the stored prefs and is the recovery path
// clients are expected to call on app start.
type MQTTNotifier struct {
	client   mqtt.Client
	deviceID string

	mu      sync.Mutex
	pending map[int]Request
}

// NewMQTTNotifier wraps an already-connected client. Commands go to
// devices/{deviceID}/alarms.
func NewMQTTNotifier(client mqtt.Client, deviceID string) *MQTTNotifier {
	return &MQTTNotifier{
		client:   client,
		deviceID: deviceID,
		pending:  make(map[int]Request),
	}
}

func (n *MQTTNotifier) topic() string {
	return fmt.Sprintf("devices/%s/alarms", n.deviceID)
}

type alarmCommand struct {
	Action  string   `json:"action"`
	Request *Request `json:"request,omitempty"`
	IDs     []int    `json:"ids,omitempty"`
}

func (n *MQTTNotifier) publish(cmd alarmCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal alarm command: %w", err)
	}
	token := n.client.Publish(n.topic(), 1, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("alarm publish timed out")
	}
	if token.Error() != nil {
		return fmt.Errorf("alarm publish: %w", token.Error())
	}
	return nil
}

func (n *MQTTNotifier) Schedule(_ context.Context, req Request) error {
	if err := validate(req); err != nil {
		return err
	}
	if err := n.publish(alarmCommand{Action: "schedule", Request: &req}); err != nil {
		log.Error().Err(err).Int("id", req.ID).Str("device", n.deviceID).Msg("failed to push alarm to device")
		return &SchedulingDenied{Cause: err.Error()}
	}
	n.mu.Lock()
	n.pending[req.ID] = req
	n.mu.Unlock()
	log.Debug().Int("id", req.ID).Time("fire_at", req.FireAt).Msg("alarm pushed to device")
	return nil
}

func (n *MQTTNotifier) Cancel(_ context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := n.publish(alarmCommand{Action: "cancel", IDs: ids}); err != nil {
		log.Error().Err(err).Ints("ids", ids).Str("device", n.deviceID).Msg("failed to cancel alarms on device")
		return err
	}
	n.mu.Lock()
	for _, id := range ids {
		delete(n.pending, id)
	}
	n.mu.Unlock()
	return nil
}

func (n *MQTTNotifier) ListPending(_ context.Context) ([]Pending, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Pending, 0, len(n.pending))
	for _, req := range n.pending {
		out = append(out, Pending{ID: req.ID, FireAt: req.FireAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
