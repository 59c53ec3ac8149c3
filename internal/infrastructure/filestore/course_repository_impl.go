package filestore

import (
	"path/filepath"
	"time"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/internal/domain/repository"
	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
)

type CourseRepository struct {
	col *Collection[entity.Course]
}

func NewCourseRepository(dataDir string) *CourseRepository {
	return &CourseRepository{
		col: NewCollection(filepath.Join(dataDir, "courses.json"), JSONCodec[entity.Course]{}),
	}
}

func (r *CourseRepository) All() ([]entity.Course, error) {
	return r.col.Load()
}

func (r *CourseRepository) GetByID(id int64) (*entity.Course, error) {
	list, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			c := list[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Create assigns the ID inside the exclusive section so concurrent
// creates cannot collide. IDs are millisecond-derived and bumped above
// the current maximum, so they stay unique even when a record with a
// higher ID was created within the same millisecond, and are never
// reused after a delete.
func (r *CourseRepository) Create(c *entity.Course) error {
	return r.col.Update(func(list []entity.Course) ([]entity.Course, error) {
		id := time.Now().UnixMilli()
		for i := range list {
			if list[i].ID >= id {
				id = list[i].ID + 1
			}
		}
		c.ID = id
		if c.Tags == nil {
			c.Tags = []string{}
		}
		return append(list, *c), nil
	})
}

// Mutate applies an in-place change to one record under the collection
// lock and returns the updated record. Concurrent Mutates of different
// fields on the same record both land.
func (r *CourseRepository) Mutate(id int64, mutate func(*entity.Course) error) (*entity.Course, error) {
	var updated entity.Course
	err := r.col.Update(func(list []entity.Course) ([]entity.Course, error) {
		for i := range list {
			if list[i].ID == id {
				if err := mutate(&list[i]); err != nil {
					return nil, err
				}
				updated = list[i]
				return list, nil
			}
		}
		return nil, apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *CourseRepository) Delete(id int64) error {
	return r.col.Update(func(list []entity.Course) ([]entity.Course, error) {
		for i := range list {
			if list[i].ID == id {
				return append(list[:i], list[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrNotFound
	})
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
