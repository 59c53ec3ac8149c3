package application

import (
	"github.com/sirupsen/logrus"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	repo "github.com/vkosyk/course-catalog-api/internal/domain/repository"
)

// CourseService owns the catalog: listing funnels every read through
// the query engine over a fresh store snapshot, mutations go through
// the repository's exclusive section.
type CourseService struct {
	Repo   repo.CourseRepository
	Logger *logrus.Logger
}

func NewCourseService(r repo.CourseRepository, logger *logrus.Logger) *CourseService {
	return &CourseService{Repo: r, Logger: logger}
}

func (s *CourseService) List(q CourseQuery) (QueryResult, error) {
	courses, err := s.Repo.All()
	if err != nil {
		return QueryResult{}, err
	}
	return RunQuery(courses, q), nil
}

func (s *CourseService) Get(id int64) (*entity.Course, error) {
	return s.Repo.GetByID(id)
}

type CreateCourseInput struct {
	Title       string
	Category    string
	Price       float64
	Popularity  int
	Tags        []string
	Description string
}

func (s *CourseService) Create(in CreateCourseInput) (*entity.Course, error) {
	c := &entity.Course{
		Title:       in.Title,
		Category:    in.Category,
		Price:       in.Price,
		Popularity:  in.Popularity,
		Tags:        in.Tags,
		Description: in.Description,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"course_id": c.ID, "title": c.Title}).Info("course created")
	}
	return c, nil
}

// PatchCourseInput carries the fields of a partial update; nil means
// "leave unchanged".
type PatchCourseInput struct {
	Title       *string
	Category    *string
	Price       *float64
	Popularity  *int
	Tags        *[]string
	Description *string
}

func (s *CourseService) Patch(id int64, in PatchCourseInput) (*entity.Course, error) {
	c, err := s.Repo.Mutate(id, func(c *entity.Course) error {
		if in.Title != nil {
			c.Title = *in.Title
		}
		if in.Category != nil {
			c.Category = *in.Category
		}
		if in.Price != nil {
			c.Price = *in.Price
		}
		if in.Popularity != nil {
			c.Popularity = *in.Popularity
		}
		if in.Tags != nil {
			c.Tags = *in.Tags
		}
		if in.Description != nil {
			c.Description = *in.Description
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("course_id", id).Info("course updated")
	}
	return c, nil
}

func (s *CourseService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("course_id", id).Info("course deleted")
	}
	return nil
}
