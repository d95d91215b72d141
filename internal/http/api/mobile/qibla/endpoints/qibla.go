package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/geoloc"
	"github.com/Duvar1/vakit/internal/heading"
	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/qibla/packets"
	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/qibla"
)

// QiblaModule mounts the location, bearing and compass endpoints.
func QiblaModule(positions *geoloc.Store, compasses *heading.Manager) api.Module {
	ctl := &QiblaController{positions: positions, compasses: compasses}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/qibla/location", ctl.reportLocation)
		c.GET("/qibla", ctl.getReading)
		c.GET("/qibla/compass", ctl.getCompass)
		c.POST("/qibla/compass/calibrate", ctl.calibrate)
	})
}

type QiblaController struct {
	positions *geoloc.Store
	compasses *heading.Manager
}

// POST /api/mobile/qibla/location
func (q *QiblaController) reportLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReportLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := q.positions.Report(user.ID, *request.Latitude, *request.Longitude); err != nil {
		return nil, locationError(err)
	}

	reading, err := qibla.Compute(*request.Latitude, *request.Longitude)
	if err != nil {
		return nil, locationError(err)
	}

	// a live compass tracks the new bearing immediately
	if fusion, ok := q.compasses.Existing(user.ID); ok {
		fusion.SetBearing(reading.BearingDeg)
	}

	return reading, nil
}

// GET /api/mobile/qibla
func (q *QiblaController) getReading(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	reading, apiErr := q.currentReading(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	return reading, nil
}

// GET /api/mobile/qibla/compass
func (q *QiblaController) getCompass(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if user.DeviceID == nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "no device registered"}
	}

	reading, apiErr := q.currentReading(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}

	fusion, err := q.compasses.Fusion(user.ID, *user.DeviceID, reading.BearingDeg)
	if err != nil {
		log.Error().Err(err).Str("device", *user.DeviceID).Msg("failed to attach heading stream")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not attach compass stream"}
	}

	state := fusion.State()
	status := packets.StatusOK
	if !state.Available {
		if fusion.Unsupported() {
			status = packets.StatusUnsupported
		} else {
			status = packets.StatusWaiting
		}
	}
	return packets.CompassResponse{Status: status, Reading: reading, Compass: state}, nil
}

// POST /api/mobile/qibla/compass/calibrate
func (q *QiblaController) calibrate(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fusion, ok := q.compasses.Existing(user.ID)
	if !ok {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "compass not active"}
	}

	offset := fusion.ApplyCalibration()
	return packets.CalibrateResponse{OffsetDeg: offset, Compass: fusion.State()}, nil
}

func (q *QiblaController) currentReading(userID int) (model.QiblaReading, *api.APIError) {
	fix, err := q.positions.Latest(userID)
	if err != nil {
		return model.QiblaReading{}, locationError(err)
	}
	reading, err := qibla.Compute(fix.Lat, fix.Lng)
	if err != nil {
		return model.QiblaReading{}, locationError(err)
	}
	return reading, nil
}

func locationError(err error) *api.APIError {
	var unavailable *qibla.LocationUnavailable
	if errors.As(err, &unavailable) {
		return &api.APIError{Code: http.StatusUnprocessableEntity, Message: unavailable.Error()}
	}
	return &api.APIError{Code: http.StatusInternalServerError, Message: "location lookup failed"}
}
