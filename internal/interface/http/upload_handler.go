package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	uploadapp "github.com/vkosyk/course-catalog-api/internal/application"
	"github.com/vkosyk/course-catalog-api/internal/interface/middleware"
	"github.com/vkosyk/course-catalog-api/pkg/response"
)

type UploadHandler struct {
	Svc    *uploadapp.UploadService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *uploadapp.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Avatar accepts a multipart form with a single "avatar" file field and
// binds the validated asset to the calling user. The request body is
// capped before parsing so an oversized upload never reaches the store.
func (h *UploadHandler) Avatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uploadapp.MaxAvatarBytes+4096)

	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"avatar": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"avatar": "file could not be read"})
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.BindAvatar(middleware.UserID(c), f, fh.Size)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar uploaded", nil)
}
