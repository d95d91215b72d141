package packets

import "github.com/Duvar1/vakit/internal/model"

// Compass status values. "waiting" means the stream is attached but no
// heading sample has arrived yet; "unsupported" means the device reported
// that it cannot provide headings at all.
const (
	StatusOK          = "ok"
	StatusWaiting     = "waiting"
	StatusUnsupported = "unsupported"
)

type CompassResponse struct {
	Status  string             `json:"status"`
	Reading model.QiblaReading `json:"reading"`
	Compass model.CompassState `json:"compass"`
}

type CalibrateResponse struct {
	OffsetDeg float64            `json:"offset_deg"`
	Compass   model.CompassState `json:"compass"`
}
