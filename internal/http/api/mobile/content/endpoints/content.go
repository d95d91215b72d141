package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/content"
	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/storage"
)

// ContentPublicModule mounts the unauthenticated daily content endpoint.
func ContentPublicModule(service *content.Service) api.Module {
	ctl := &ContentController{service: service, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/content/daily", ctl.daily)
	})
}

// ContentAdminModule mounts the card image and alert sound upload endpoint.
func ContentAdminModule(storageSystem storage.Storage) api.Module {
	ctl := &ContentController{storage: storageSystem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/content/assets", ctl.uploadAsset)
	})
}

type ContentController struct {
	service *content.Service
	storage storage.Storage
	now     func() time.Time
}

// GET /api/mobile/content/daily
func (cc *ContentController) daily(ctx *gin.Context) (any, *api.APIError) {
	return cc.service.Daily(ctx.Request.Context(), cc.now()), nil
}

// POST /api/mobile/content/assets
func (cc *ContentController) uploadAsset(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	kind := ctx.PostForm("kind")
	if kind != storage.KindCardImage && kind != storage.KindSound {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "kind must be cards or sounds"}
	}

	// binary upload via multipart form
	fileHeader, err := ctx.FormFile("source")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing source file"}
	}

	path, err := cc.storage.SaveAsset(fileHeader, kind)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("asset upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store asset"}
	}

	return gin.H{"path": path, "kind": kind}, nil
}
