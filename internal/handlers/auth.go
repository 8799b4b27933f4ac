package handlers

import (
	"log"
	"net/http"
	"strings"

	"campus-portal/internal/database"
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"title": "Sign In"})
}

// Login verifies credentials and establishes the session snapshot. Unknown
// email and wrong password produce the same generic flash so the form never
// reveals whether an account exists.
func Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if email == "" || password == "" {
		session.SetFlash(c, session.FlashError, "Email and password are required.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user := database.FindUserByEmail(email)
	if user == nil || !database.VerifyPassword(password, user.PasswordHash) {
		log.Printf("failed login attempt for %s", email)
		session.SetFlash(c, session.FlashError, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session.SetCurrent(c, user)
	c.Redirect(http.StatusFound, "/dashboard")
}

func Logout(c *gin.Context) {
	session.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
