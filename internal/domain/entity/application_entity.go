package entity

import "time"

// Application is a course intake record. The collection is append-only:
// applications are never mutated or deleted through the API.
type Application struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CourseID  int64     `json:"courseId"`
	Note      string    `json:"note,omitempty"`
}
