package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/steps/packets"
	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/steps"
)

// StepsModule mounts the Google Fit connection and step count endpoints.
func StepsModule(fit *steps.FitClient, service *steps.Service) api.Module {
	ctl := &StepsController{fit: fit, service: service, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/steps/auth_url", ctl.authURL)
		c.POST("/steps/connect", ctl.connect)
		c.GET("/steps/today", ctl.today)
		c.GET("/steps/history", ctl.history)
	})
}

type StepsController struct {
	fit     *steps.FitClient
	service *steps.Service
	now     func() time.Time
}

// GET /api/mobile/steps/auth_url
func (s *StepsController) authURL(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	state := strconv.Itoa(user.ID)
	return gin.H{"auth_url": s.fit.AuthURL(state)}, nil
}

// POST /api/mobile/steps/connect
func (s *StepsController) connect(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ConnectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	token, err := s.fit.Exchange(ctx.Request.Context(), request.Code)
	if err != nil {
		log.Warn().Err(err).Int("user_id", user.ID).Msg("google fit code exchange failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not exchange authorization code"}
	}

	s.service.SaveToken(user.ID, token)
	return gin.H{"connected": true}, nil
}

// GET /api/mobile/steps/today
func (s *StepsController) today(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	total, err := s.service.RefreshToday(ctx.Request.Context(), user.ID, s.now())
	if err != nil {
		if errors.Is(err, steps.ErrNotConnected) {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "google fit not connected"}
		}
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch step count"}
	}
	return gin.H{"day": s.now().Format("2006-01-02"), "steps": total}, nil
}

// GET /api/mobile/steps/history
func (s *StepsController) history(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	samples, err := s.service.History(user.ID, days)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load step history"}
	}
	return samples, nil
}
