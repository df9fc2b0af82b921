package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// CurrentUserID returns the id stored in the session when the client is
// authenticated.
func CurrentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	value := session.Get(userIDKey)
	if value == nil {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// LoginUser binds the session to the given user id.
func LoginUser(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set(userIDKey, userID)
	return session.Save()
}

// LogoutUser drops the whole session, flashes included.
func LogoutUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
