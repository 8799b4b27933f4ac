package middleware

import (
	"log"
	"net/http"

	"campus-portal/internal/database"
	"campus-portal/internal/models"
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.Current(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("IsLoggedIn", true)
		c.Next()
	}
}

func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := session.Current(c)
		if !ok {
			session.SetFlash(c, session.FlashError, "You must be logged in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if snap.Role != role {
			log.Printf("authorization denied: user %d (role %s) requires role %s for %s",
				snap.UserID, snap.Role, role, c.Request.URL.Path)
			database.CreateAuditLog(snap.UserID, 0, "denied", "missing role "+string(role)+" for "+c.Request.URL.Path)
			session.SetFlash(c, session.FlashError, "You do not have permission to access this page.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
