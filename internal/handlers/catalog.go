package handlers

import (
	"net/http"

	"campus-portal/internal/database"

	"github.com/gin-gonic/gin"
)

func CatalogPage(c *gin.Context) {
	courses := database.ListCourses()
	render(c, http.StatusOK, "catalog.html", gin.H{
		"title":   "Course Catalog",
		"courses": courses,
	})
}

func CourseDetailPage(c *gin.Context) {
	course := database.GetCourseBySlug(c.Param("slug"))
	if course == nil {
		RenderNotFound(c, "Course Not Found")
		return
	}
	render(c, http.StatusOK, "course.html", gin.H{
		"title":  course.Title,
		"course": course,
	})
}
