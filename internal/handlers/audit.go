package handlers

import (
	"net/http"

	"campus-portal/internal/database"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	records := database.ListAuditLogs()
	render(c, http.StatusOK, "audit.html", gin.H{
		"title": "Account Audit Trail",
		"logs":  records,
	})
}
