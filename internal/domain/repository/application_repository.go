package repository

import "github.com/vkosyk/course-catalog-api/internal/domain/entity"

// ApplicationRepository persists intake records. The collection is
// append-only; there is no update or delete.
type ApplicationRepository interface {
	All() ([]entity.Application, error)
	Append(a *entity.Application) error
}
