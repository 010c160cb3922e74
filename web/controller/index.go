package controller

import (
	"net/http"

	"github.com/taskdeck/taskdeck/logger"
	"github.com/taskdeck/taskdeck/web/service"
	"github.com/taskdeck/taskdeck/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles login and logout.
type IndexController struct {
	settingService service.SettingService
	userService    service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// login authenticates the submitted credentials and sets the session cookie.
// Unknown user and wrong password produce the same response.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username can not be empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password can not be empty")
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err == service.ErrWrongCredentials {
		logger.Warningf("wrong credentials for username %q, IP: %q", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "invalid username or password")
		return
	} else if err != nil {
		logger.Error("login err:", err)
		pureJsonMsg(c, http.StatusOK, false, "something went wrong")
		return
	}

	secret, err := a.settingService.GetSecret()
	if err != nil {
		logger.Error("get secret err:", err)
		pureJsonMsg(c, http.StatusOK, false, "something went wrong")
		return
	}
	if err := session.SetLoginCookie(c, user.Id, secret); err != nil {
		logger.Error("set login cookie err:", err)
		pureJsonMsg(c, http.StatusOK, false, "something went wrong")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	jsonMsg(c, "login successfully", nil)
}

// logout clears the session cookie. The token itself stays valid until its
// TTL runs out; there is no server-side revocation.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	session.ClearLoginCookie(c)
	jsonMsg(c, "logout successfully", nil)
}
