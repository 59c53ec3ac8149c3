package repository

import "github.com/vkosyk/course-catalog-api/internal/domain/entity"

// UserRepository defines the interface for user record persistence.
type UserRepository interface {
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Create(u *entity.User) error
	Mutate(id int64, mutate func(*entity.User) error) (*entity.User, error)
}
