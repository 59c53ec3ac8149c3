package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	handlers "github.com/vkosyk/course-catalog-api/internal/interface/http"
	"github.com/vkosyk/course-catalog-api/internal/interface/middleware"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// CatalogModule wires the course routes.
// Public: GET /api/courses, GET /api/courses/:id
// Admin:  POST /api/courses, PATCH /api/courses/:id, DELETE /api/courses/:id
type CatalogModule struct {
	Handler *handlers.CourseHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
}

func NewCatalogModule(h *handlers.CourseHandler, jwt *helpers.JWTManager, cookies *helpers.Manager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/courses", m.Handler.List)
	rg.GET("/courses/:id", m.Handler.Get)

	admin := rg.Group("/courses")
	admin.Use(middleware.Session(m.JWT, m.Cookies), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("", m.Handler.Create)
		admin.PATCH("/:id", m.Handler.Patch)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
