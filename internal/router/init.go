package router

import (
	app "github.com/vkosyk/course-catalog-api/internal/application"
	"github.com/vkosyk/course-catalog-api/internal/container"
	handlers "github.com/vkosyk/course-catalog-api/internal/interface/http"
	"github.com/vkosyk/course-catalog-api/internal/router/modules"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	courseSvc := app.NewCourseService(container.GetCourseRepo(), logger)
	authSvc := app.NewAuthService(container.GetUserRepo(), jwt, logger)
	appSvc := app.NewApplicationService(container.GetApplicationRepo(), container.GetCourseRepo(), logger)
	uploadSvc := app.NewUploadService(container.GetUserRepo(), cfg.UploadsDir, logger)

	r.Add(modules.NewCatalogModule(handlers.NewCourseHandler(courseSvc, logger), jwt, cookies))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cookies), jwt, cookies))
	r.Add(modules.NewApplicationModule(handlers.NewApplicationHandler(appSvc, logger), jwt, cookies))
	r.Add(modules.NewUploadModule(handlers.NewUploadHandler(uploadSvc, logger), jwt, cookies))
	r.Add(modules.NewDebugModule())
}
