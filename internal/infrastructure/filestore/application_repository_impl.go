package filestore

import (
	"path/filepath"
	"time"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/internal/domain/repository"
)

// ApplicationFormat selects the flat-file encoding for the applications
// collection. Both encodings round-trip the same logical records.
type ApplicationFormat string

const (
	FormatJSON ApplicationFormat = "json"
	FormatCSV  ApplicationFormat = "csv"
)

type ApplicationRepository struct {
	col *Collection[entity.Application]
}

func NewApplicationRepository(dataDir string, format ApplicationFormat) *ApplicationRepository {
	if format == FormatCSV {
		return &ApplicationRepository{
			col: NewCollection[entity.Application](filepath.Join(dataDir, "applications.csv"), ApplicationCSVCodec{}),
		}
	}
	return &ApplicationRepository{
		col: NewCollection(filepath.Join(dataDir, "applications.json"), JSONCodec[entity.Application]{}),
	}
}

func (r *ApplicationRepository) All() ([]entity.Application, error) {
	return r.col.Load()
}

// Append assigns the ID and timestamp inside the exclusive section and
// adds the record to the end of the collection. Existing records are
// never touched.
func (r *ApplicationRepository) Append(a *entity.Application) error {
	return r.col.Update(func(list []entity.Application) ([]entity.Application, error) {
		id := time.Now().UnixMilli()
		for i := range list {
			if list[i].ID >= id {
				id = list[i].ID + 1
			}
		}
		a.ID = id
		a.Timestamp = time.Now().UTC()
		return append(list, *a), nil
	})
}

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)
