package filestore

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/internal/domain/repository"
	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
)

type UserRepository struct {
	col *Collection[entity.User]
}

func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{
		col: NewCollection(filepath.Join(dataDir, "users.json"), JSONCodec[entity.User]{}),
	}
}

func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	list, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			u := list[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	list, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Email, email) {
			u := list[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Create enforces email uniqueness inside the exclusive section.
func (r *UserRepository) Create(u *entity.User) error {
	return r.col.Update(func(list []entity.User) ([]entity.User, error) {
		for i := range list {
			if strings.EqualFold(list[i].Email, u.Email) {
				return nil, apperrors.NewValidation("email", "already registered")
			}
		}
		id := time.Now().UnixMilli()
		for i := range list {
			if list[i].ID >= id {
				id = list[i].ID + 1
			}
		}
		u.ID = id
		return append(list, *u), nil
	})
}

// Mutate applies an in-place change to one user under the collection
// lock. The avatar binding goes through here, so it cannot race a
// concurrent profile mutation.
func (r *UserRepository) Mutate(id int64, mutate func(*entity.User) error) (*entity.User, error) {
	var updated entity.User
	err := r.col.Update(func(list []entity.User) ([]entity.User, error) {
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

var _ repository.UserRepository = (*UserRepository)(nil)
