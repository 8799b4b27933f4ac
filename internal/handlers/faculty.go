package handlers

import (
	"net/http"

	"campus-portal/internal/database"

	"github.com/gin-gonic/gin"
)

// sort options map directly to columns; anything else falls back to name
var facultySortOptions = map[string]bool{
	"name":       true,
	"department": true,
	"title":      true,
}

func FacultyListPage(c *gin.Context) {
	sortBy := c.Query("sort")
	if !facultySortOptions[sortBy] {
		sortBy = "name"
	}

	members := database.ListFaculty(sortBy)
	render(c, http.StatusOK, "faculty.html", gin.H{
		"title":       "Faculty Directory",
		"currentSort": sortBy,
		"facultyList": members,
	})
}

func FacultyDetailPage(c *gin.Context) {
	member := database.GetFacultyBySlug(c.Param("slug"))
	if member == nil {
		RenderNotFound(c, "Faculty Member Not Found")
		return
	}
	render(c, http.StatusOK, "faculty_member.html", gin.H{
		"title":  member.Name,
		"member": member,
	})
}
