package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/vkosyk/course-catalog-api/internal/interface/http"
	"github.com/vkosyk/course-catalog-api/internal/interface/middleware"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// UploadModule wires the avatar upload route.
// Session: POST /api/uploads/avatar
type UploadModule struct {
	Handler *handlers.UploadHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
}

func NewUploadModule(h *handlers.UploadHandler, jwt *helpers.JWTManager, cookies *helpers.Manager) *UploadModule {
	return &UploadModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	session := rg.Group("/uploads")
	session.Use(middleware.Session(m.JWT, m.Cookies))
	{
		session.POST("/avatar", m.Handler.Avatar)
	}
}
