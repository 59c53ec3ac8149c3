package application

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
)

// Query parameters for the catalog listing. Zero values mean "no
// constraint"; invalid page/limit values clamp to the defaults.
type CourseQuery struct {
	Query    string
	Category string
	Sort     string // price | popularity | title | category
	Order    string // asc (default) | desc
	Page     int
	Limit    int
}

const (
	DefaultPage  = 1
	DefaultLimit = 9
)

// QueryResult is one page of the filtered catalog plus the pagination
// meta the client renders.
type QueryResult struct {
	Items      []entity.Course
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// RunQuery computes a filtered, sorted, paginated view over an
// in-memory snapshot. Pure function: no I/O, input slice untouched.
func RunQuery(courses []entity.Course, q CourseQuery) QueryResult {
	filtered := filterCourses(courses, q.Query, q.Category)
	sortCourses(filtered, q.Sort, q.Order)
	return paginate(filtered, q.Page, q.Limit)
}

// filterCourses keeps records whose title or any tag contains the query
// case-insensitively, AND whose category matches exactly when a
// category other than "all" is given.
func filterCourses(courses []entity.Course, query, category string) []entity.Course {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Course, 0, len(courses))
	for _, c := range courses {
		if category != "" && category != "all" && c.Category != category {
			continue
		}
		if q != "" && !matchesText(c, q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesText(c entity.Course, q string) bool {
	if strings.Contains(strings.ToLower(c.Title), q) {
		return true
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// sortCourses sorts in place, stably: records with equal keys keep
// their relative pre-sort order. Titles and categories compare with
// Ukrainian collation, matching the catalog's display language; an
// unknown sort field leaves the input order untouched.
func sortCourses(courses []entity.Course, field, order string) {
	var less func(a, b entity.Course) bool
	switch field {
	case "price":
		less = func(a, b entity.Course) bool { return a.Price < b.Price }
	case "popularity":
		less = func(a, b entity.Course) bool { return a.Popularity < b.Popularity }
	case "title":
		col := collate.New(language.Ukrainian)
		less = func(a, b entity.Course) bool { return col.CompareString(a.Title, b.Title) < 0 }
	case "category":
		col := collate.New(language.Ukrainian)
		less = func(a, b entity.Course) bool { return col.CompareString(a.Category, b.Category) < 0 }
	default:
		return
	}
	if order == "desc" {
		asc := less
		less = func(a, b entity.Course) bool { return asc(b, a) }
	}
	sort.SliceStable(courses, func(i, j int) bool { return less(courses[i], courses[j]) })
}

// paginate returns the half-open slice [(page-1)*limit, page*limit)
// clamped to the filtered set. Out-of-range pages yield an empty page,
// not an error.
func paginate(courses []entity.Course, page, limit int) QueryResult {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	total := len(courses)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	// page and limit are user-controlled and may be huge; (page-1)*limit
	// can overflow, so out-of-range pages are rejected before any
	// multiplication.
	if page > totalPages {
		return QueryResult{
			Items:      []entity.Course{},
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		}
	}

	start := (page - 1) * limit
	end := start + limit
	if end > total || end < start {
		end = total
	}
	return QueryResult{
		Items:      courses[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
