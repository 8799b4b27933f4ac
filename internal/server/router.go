package server

import (
	"fmt"
	"net/http"

	"campus-portal/internal/config"
	"campus-portal/internal/handlers"
	"campus-portal/internal/middleware"
	"campus-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	handlers.AppEnv = cfg.AppEnv

	r := gin.New()
	r.Use(gin.Logger())
	// panics end up on the centralized 500 page, never as a raw trace
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		handlers.RenderServerError(c, fmt.Errorf("%v", recovered))
		c.Abort()
	}))

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob(cfg.TemplateGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("campus_session", store))

	r.Use(middleware.InjectUser())

	// PAGES
	r.GET("/", handlers.HomePage)
	r.GET("/about", handlers.AboutPage)

	// CATALOG
	r.GET("/catalog", handlers.CatalogPage)
	r.GET("/catalog/:slug", handlers.CourseDetailPage)

	// FACULTY
	r.GET("/faculty", handlers.FacultyListPage)
	r.GET("/faculty/:slug", handlers.FacultyDetailPage)

	// CONTACT
	r.GET("/contact", handlers.ShowContactForm)
	r.POST("/contact", handlers.SubmitContactForm)
	r.GET("/contact/responses", handlers.ContactResponsesPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// the listing is public in the current wiring; edit/delete are not
	r.GET("/users", handlers.ListUsers)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/dashboard", handlers.Dashboard)
	auth.GET("/users/:id/edit", handlers.ShowEditAccount)
	auth.POST("/users/:id/update", handlers.UpdateAccount)

	// ADMIN
	auth.POST("/users/:id/delete",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteAccount,
	)
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListAuditLogs,
	)

	// ERRORS
	r.GET("/test-error", handlers.TestError)
	r.NoRoute(handlers.NotFound)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
