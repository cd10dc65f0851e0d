package domain

import "time"

// Defaults applied when a course is created without the optional fields.
const (
	DefaultCourseCount = "5 Courses"
	DefaultCourseIcon  = "📚"
)

type Course struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Courses     string    `json:"courses"`
	Icon        string    `json:"icon"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
