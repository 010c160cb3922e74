package middleware

import (
	"net/http"

	"github.com/taskdeck/taskdeck/web/entity"
	"github.com/taskdeck/taskdeck/web/service"
	"github.com/taskdeck/taskdeck/web/session"

	"github.com/gin-gonic/gin"
)

// SessionAuth validates the signed session cookie and loads the
// authenticated user into the request context. Any malformed, tampered or
// expired token ends the request as unauthorized; the reason is never
// surfaced to the client.
func SessionAuth() gin.HandlerFunc {
	settingService := service.SettingService{}
	userService := service.UserService{}

	return func(c *gin.Context) {
		secret, err := settingService.GetSecret()
		if err != nil {
			c.JSON(http.StatusInternalServerError, entity.Msg{Msg: "something went wrong"})
			c.Abort()
			return
		}

		claim := session.GetTokenClaim(c, secret)
		if claim == nil {
			unauthorized(c)
			return
		}

		user, err := userService.GetUser(claim.UserId)
		if err != nil {
			unauthorized(c)
			return
		}

		session.SetLoginUser(c, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	session.ClearLoginCookie(c)
	c.JSON(http.StatusUnauthorized, entity.Msg{Msg: "not authenticated"})
	c.Abort()
}
