// Package controller provides the HTTP handlers of the taskdeck API.
package controller

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck/logger"
	"github.com/taskdeck/taskdeck/web/entity"
	"github.com/taskdeck/taskdeck/web/service"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends a JSON response with a message and error status.
func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

// jsonObj sends a JSON response with an object and error status.
func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

// jsonMsgObj sends the Msg envelope. Client-correctable outcomes keep their
// message; anything else is logged in full server side and reported
// generically, never echoing internals.
func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{
		Obj: obj,
	}
	if err == nil {
		m.Success = true
		if msg != "" {
			m.Msg = msg
		}
	} else {
		m.Success = false
		switch {
		case errors.Is(err, service.ErrNotFound),
			errors.Is(err, service.ErrInvalidArgument),
			errors.Is(err, service.ErrWrongCredentials),
			errors.Is(err, service.ErrCategoryInUse):
			m.Msg = strings.TrimSpace(msg + " " + err.Error())
			logger.Debug(msg+" fail: ", err)
		default:
			m.Msg = strings.TrimSpace(msg + " something went wrong")
			logger.Warning(msg+" fail: ", err)
		}
	}
	c.JSON(http.StatusOK, m)
}

// pureJsonMsg sends a pure JSON message response with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}
