package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	appsvc "github.com/vkosyk/course-catalog-api/internal/application"
	"github.com/vkosyk/course-catalog-api/pkg/response"
	"github.com/vkosyk/course-catalog-api/pkg/validation"
)

type ApplicationHandler struct {
	Svc    *appsvc.ApplicationService
	Logger *logrus.Logger
}

func NewApplicationHandler(svc *appsvc.ApplicationService, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{Svc: svc, Logger: logger}
}

type submitApplicationRequest struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	CourseID int64  `json:"courseId" binding:"required"`
	Note     string `json:"note" binding:"omitempty,max=1000"`
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req submitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Submit(appsvc.SubmitApplicationInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		CourseID: req.CourseID,
		Note:     req.Note,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a, "application submitted", nil)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	list, err := h.Svc.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "applications", gin.H{"total": len(list)})
}
