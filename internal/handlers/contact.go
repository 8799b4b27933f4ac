package handlers

import (
	"net/http"
	"strings"

	"campus-portal/internal/database"
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

func ShowContactForm(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{"title": "Contact Us"})
}

func SubmitContactForm(c *gin.Context) {
	subject := strings.TrimSpace(c.PostForm("subject"))
	message := strings.TrimSpace(c.PostForm("message"))

	if len(subject) < 2 {
		session.SetFlash(c, session.FlashError, "Subject must be at least 2 characters long.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	if len(message) < 10 {
		session.SetFlash(c, session.FlashError, "Message must be at least 10 characters long.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	if database.CreateContactMessage(subject, message) == nil {
		session.SetFlash(c, session.FlashError, "Failed to save contact form.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	session.SetFlash(c, session.FlashSuccess, "Your message has been sent successfully!")
	c.Redirect(http.StatusFound, "/contact")
}

func ContactResponsesPage(c *gin.Context) {
	records := database.ListContactMessages()
	render(c, http.StatusOK, "contact_responses.html", gin.H{
		"title":        "Contact Form Submissions",
		"contactForms": records,
	})
}
