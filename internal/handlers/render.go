package handlers

import (
	"net/http"
	"runtime/debug"

	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// AppEnv mirrors config.AppEnv; the router sets it once at startup. Anything
// other than "production" exposes diagnostic detail on the 500 page.
var AppEnv = "production"

// render wraps c.HTML so every template sees the current user and the
// one-shot flash without each handler passing them through.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if snap, ok := session.Current(c); ok {
		data["CurrentUser"] = snap
		data["IsLoggedIn"] = true
	}

	if flash, ok := session.TakeFlash(c); ok {
		data["FlashType"] = flash.Type
		data["FlashMessage"] = flash.Message
	}

	c.HTML(status, tmpl, data)
}

// RenderNotFound is the single 404 renderer; missing routes and missing
// entities both land here.
func RenderNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Page not found!"
	}
	render(c, http.StatusNotFound, "error_404.html", gin.H{
		"title":   "Page Not Found",
		"message": message,
	})
}

// RenderServerError is the single 500 renderer. Outside production the page
// carries the error and a stack trace; in production only a generic message.
func RenderServerError(c *gin.Context, err error) {
	data := gin.H{"title": "Server Error"}
	if AppEnv != "production" && err != nil {
		data["error"] = err.Error()
		data["stack"] = string(debug.Stack())
	}
	render(c, http.StatusInternalServerError, "error_500.html", data)
}

func NotFound(c *gin.Context) {
	RenderNotFound(c, "")
}
