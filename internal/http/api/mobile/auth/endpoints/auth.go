package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/heading"
	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/auth/packets"
	"github.com/Duvar1/vakit/internal/http/middleware"
	"github.com/Duvar1/vakit/internal/model"
)

// AuthPublicModule mounts public auth endpoints (/auth/register, /auth/login)
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/register", ctl.register)
		c.PUBLIC_POST("/auth/login", ctl.login)
	})
}

// AuthSessionModule mounts private profile endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store, compasses *heading.Manager) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	ctl.compasses = compasses
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/profile", ctl.getProfile)
		c.PUT("/auth/profile", ctl.updateProfile)
		c.PUT("/auth/device", ctl.registerDevice)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
	compasses *heading.Manager
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

// POST /api/mobile/auth/register
func (a *AccountManager) register(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if existing, _ := a.store.GetUserByEmail(request.Email); existing != nil {
		log.Warn().Str("email", request.Email).Msg("register email already taken")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "email already registered"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	userID, err := a.store.CreateUser(request.Email, hashed, request.Name, request.City)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create user"}
	}

	token, err := middleware.GenerateJWT(userID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"token": token}, nil
}

// POST /api/mobile/auth/login
func (a *AccountManager) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	foundUser, err := a.store.GetUserByEmail(request.Email)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"token": token}, nil
}

// GET /api/mobile/auth/profile
func (a *AccountManager) getProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return profileResponse(user), nil
}

// PUT /api/mobile/auth/profile
func (a *AccountManager) updateProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Email != user.Email {
		if other, _ := a.store.GetUserByEmail(request.Email); other != nil {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
		}
	}

	if err := a.store.UpdateUserProfile(user.ID, request.Email, request.Name, request.City); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}

	updated, err := a.store.GetUserByID(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated profile"}
	}

	return profileResponse(updated), nil
}

// PUT /api/mobile/auth/device
func (a *AccountManager) registerDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.RegisterDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := a.store.UpdateUserDevice(user.ID, request.DeviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not register device"}
	}

	// detach any compass stream bound to the previous device
	if a.compasses != nil && (user.DeviceID == nil || *user.DeviceID != request.DeviceID) {
		a.compasses.Drop(user.ID)
	}

	return gin.H{"device_id": request.DeviceID}, nil
}

func profileResponse(user *model.User) packets.ProfileResponse {
	return packets.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		City:      user.City,
		DeviceID:  user.DeviceID,
		IsPremium: user.IsPremium,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
