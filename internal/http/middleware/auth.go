package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/model"
)

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// GetCurrentUser returns the user set by JWTMiddleware.
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

// GetStore returns the store set by InjectStore.
func GetStore(c *gin.Context) (db.Store, bool) {
	value, exists := c.Get("store")
	if !exists {
		return nil, false
	}
	store, ok := value.(db.Store)
	return store, ok
}
