package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	handlers "github.com/vkosyk/course-catalog-api/internal/interface/http"
	"github.com/vkosyk/course-catalog-api/internal/interface/middleware"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// ApplicationModule wires the course intake routes.
// Public: POST /api/applications
// Admin:  GET /api/applications
type ApplicationModule struct {
	Handler *handlers.ApplicationHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
}

func NewApplicationModule(h *handlers.ApplicationHandler, jwt *helpers.JWTManager, cookies *helpers.Manager) *ApplicationModule {
	return &ApplicationModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *ApplicationModule) Register(rg *gin.RouterGroup) {
	rg.POST("/applications", m.Handler.Submit)

	admin := rg.Group("/applications")
	admin.Use(middleware.Session(m.JWT, m.Cookies), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("", m.Handler.List)
	}
}
