package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func HomePage(c *gin.Context) {
	render(c, http.StatusOK, "home.html", gin.H{"title": "Welcome Home"})
}

func AboutPage(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{"title": "About"})
}

func Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", gin.H{"title": "Dashboard"})
}

// TestError exercises the centralized 500 renderer.
func TestError(c *gin.Context) {
	RenderServerError(c, errors.New("This is a test error"))
}
