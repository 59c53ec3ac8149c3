package application

import (
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	repo "github.com/vkosyk/course-catalog-api/internal/domain/repository"
	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
)

// ApplicationService handles course intake records.
type ApplicationService struct {
	Apps    repo.ApplicationRepository
	Courses repo.CourseRepository
	Logger  *logrus.Logger
}

func NewApplicationService(apps repo.ApplicationRepository, courses repo.CourseRepository, logger *logrus.Logger) *ApplicationService {
	return &ApplicationService{Apps: apps, Courses: courses, Logger: logger}
}

type SubmitApplicationInput struct {
	FullName string
	Email    string
	Phone    string
	CourseID int64
	Note     string
}

// Submit appends one intake record. The referenced course must exist;
// a dangling course id is reported as a field-level validation error,
// the same shape the binding layer produces.
func (s *ApplicationService) Submit(in SubmitApplicationInput) (*entity.Application, error) {
	if _, err := s.Courses.GetByID(in.CourseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidation("courseId", "unknown course")
		}
		return nil, err
	}
	a := &entity.Application{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		CourseID: in.CourseID,
		Note:     in.Note,
	}
	if err := s.Apps.Append(a); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"application_id": a.ID, "course_id": a.CourseID}).Info("application submitted")
	}
	return a, nil
}

// List returns applications newest-first for the admin view.
func (s *ApplicationService) List() ([]entity.Application, error) {
	list, err := s.Apps.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.After(list[j].Timestamp) })
	return list, nil
}
