package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vkosyk/course-catalog-api/internal/container"
	handlers "github.com/vkosyk/course-catalog-api/internal/interface/http"
	"github.com/vkosyk/course-catalog-api/internal/interface/middleware"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// AuthModule wires login/logout/identity routes.
// Public: POST /api/auth/login (rate-limited per IP when redis is up)
// Session: GET /api/me, POST /api/auth/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, cookies *helpers.Manager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	session := rg.Group("/")
	session.Use(middleware.Session(m.JWT, m.Cookies))
	{
		session.GET("/me", m.Handler.Me)
		session.POST("/auth/logout", m.Handler.Logout)
	}
}
