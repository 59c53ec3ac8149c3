package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	courseapp "github.com/vkosyk/course-catalog-api/internal/application"
	"github.com/vkosyk/course-catalog-api/pkg/response"
	"github.com/vkosyk/course-catalog-api/pkg/validation"
)

type CourseHandler struct {
	Svc    *courseapp.CourseService
	Logger *logrus.Logger
}

func NewCourseHandler(svc *courseapp.CourseService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Svc: svc, Logger: logger}
}

type listCoursesQuery struct {
	Query    string `form:"query"`
	Category string `form:"category"`
	Sort     string `form:"sort" binding:"omitempty,oneof=price popularity title category"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type createCourseRequest struct {
	Title       string   `json:"title" binding:"required,min=1"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Popularity  int      `json:"popularity" binding:"omitempty,gte=0,lte=100"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

type patchCourseRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	Popularity  *int      `json:"popularity" binding:"omitempty,gte=0,lte=100"`
	Tags        *[]string `json:"tags"`
	Description *string   `json:"description"`
}

func (h *CourseHandler) List(c *gin.Context) {
	var q listCoursesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.List(courseapp.CourseQuery{
		Query:    q.Query,
		Category: q.Category,
		Sort:     q.Sort,
		Order:    q.Order,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res.Items, "courses", gin.H{
		"total":       res.Total,
		"page":        res.Page,
		"limit":       res.Limit,
		"total_pages": res.TotalPages,
	})
}

func (h *CourseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid course id", nil)
		return
	}
	course, err := h.Svc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course, "course", nil)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	course, err := h.Svc.Create(courseapp.CreateCourseInput{
		Title:       req.Title,
		Category:    req.Category,
		Price:       *req.Price,
		Popularity:  req.Popularity,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, course, "course created", nil)
}

func (h *CourseHandler) Patch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid course id", nil)
		return
	}
	var req patchCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	course, err := h.Svc.Patch(id, courseapp.PatchCourseInput{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Popularity:  req.Popularity,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course, "course updated", nil)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid course id", nil)
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
