package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Duvar1/vakit/internal/content"
	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/quran/packets"
	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/quran"
)

// QuranModule mounts the verse and bookmark endpoints.
func QuranModule(store db.Store, client *quran.Client) api.Module {
	ctl := &QuranController{store: store, client: client, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/quran/daily", ctl.dailyVerse)
		c.GET("/quran/random", ctl.randomVerse)
		c.GET("/quran/bookmarks", ctl.listBookmarks)
		c.POST("/quran/bookmarks", ctl.createBookmark)
		c.DELETE("/quran/bookmarks/:id", ctl.deleteBookmark)
	})
}

type QuranController struct {
	store  db.Store
	client *quran.Client
	now    func() time.Time
}

// GET /api/mobile/quran/daily
func (q *QuranController) dailyVerse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return q.client.DailyVerse(ctx.Request.Context(), content.DayOfYear(q.now())), nil
}

// GET /api/mobile/quran/random
func (q *QuranController) randomVerse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return q.client.RandomVerse(ctx.Request.Context()), nil
}

// GET /api/mobile/quran/bookmarks
func (q *QuranController) listBookmarks(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	bookmarks, err := q.store.ListBookmarks(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list bookmarks"}
	}
	return bookmarks, nil
}

// POST /api/mobile/quran/bookmarks
func (q *QuranController) createBookmark(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateBookmarkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	bookmark, err := q.store.CreateBookmark(user.ID, request.Surah, request.Ayah, request.Note)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save bookmark"}
	}
	return bookmark, nil
}

// DELETE /api/mobile/quran/bookmarks/:id
func (q *QuranController) deleteBookmark(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid bookmark id"}
	}

	if err := q.store.DeleteBookmark(user.ID, id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "bookmark not found"}
	}
	return gin.H{"deleted": id}, nil
}
