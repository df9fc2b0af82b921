package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardian-watch/web-go/utils"
)

// RequireLogin guards a route group: anonymous clients are sent to the login
// page and never reach the handler.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.CurrentUserID(c); !ok {
			utils.Flash(c, "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
