package repository

import "github.com/vkosyk/course-catalog-api/internal/domain/entity"

// CourseRepository defines catalog persistence. Reads return the latest
// committed snapshot; mutations run inside the store's per-collection
// exclusive section.
type CourseRepository interface {
	All() ([]entity.Course, error)
	GetByID(id int64) (*entity.Course, error)
	Create(c *entity.Course) error
	Mutate(id int64, mutate func(*entity.Course) error) (*entity.Course, error)
	Delete(id int64) error
}
