package endpoints

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/referral/packets"
	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/referral"
)

// ReferralModule mounts the invite code endpoints.
func ReferralModule(service *referral.Service) api.Module {
	ctl := &ReferralController{service: service}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/referral", ctl.getReferral)
		c.POST("/referral/redeem", ctl.redeem)
	})
}

type ReferralController struct {
	service *referral.Service
}

// GET /api/mobile/referral
func (r *ReferralController) getReferral(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	ref, err := r.service.EnsureReferral(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load referral"}
	}
	return ref, nil
}

// POST /api/mobile/referral/redeem
func (r *ReferralController) redeem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.RedeemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	code := strings.ToUpper(strings.TrimSpace(request.Code))
	ref, err := r.service.Redeem(code, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, referral.ErrCodeNotFound):
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "referral code not found"}
		case errors.Is(err, referral.ErrSelfReferral):
			return nil, &api.APIError{Code: http.StatusConflict, Message: "cannot redeem your own code"}
		default:
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not redeem code"}
		}
	}
	return ref, nil
}
