package filestore

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
)

// JSONCodec stores a collection as one pretty-printed JSON array, the
// same shape the original data files use.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func (JSONCodec[T]) Decode(r io.Reader) ([]T, error) {
	dec := json.NewDecoder(r)
	var out []T
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	// Decode stops after the first value; anything after the array
	// means the file is damaged.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after collection")
	}
	return out, nil
}

// ApplicationCSVCodec renders the append-only applications collection in
// a flat tabular encoding. It round-trips the same logical records as
// the JSON codec; deployments pick one via APPLICATIONS_FORMAT.
type ApplicationCSVCodec struct{}

var applicationCSVHeader = []string{"id", "timestamp", "fullName", "email", "phone", "courseId", "note"}

func (ApplicationCSVCodec) Encode(w io.Writer, records []entity.Application) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(applicationCSVHeader); err != nil {
		return err
	}
	for _, a := range records {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			a.Timestamp.UTC().Format(time.RFC3339Nano),
			a.FullName,
			a.Email,
			a.Phone,
			strconv.FormatInt(a.CourseID, 10),
			a.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (ApplicationCSVCodec) Decode(r io.Reader) ([]entity.Application, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(applicationCSVHeader)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !slices.Equal(rows[0], applicationCSVHeader) {
		return nil, errors.New("missing or malformed header row")
	}
	out := make([]entity.Application, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, row[1])
		if err != nil {
			return nil, err
		}
		courseID, err := strconv.ParseInt(row[5], 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.Application{
			ID:        id,
			Timestamp: ts,
			FullName:  row[2],
			Email:     row[3],
			Phone:     row[4],
			CourseID:  courseID,
			Note:      row[6],
		})
	}
	return out, nil
}
