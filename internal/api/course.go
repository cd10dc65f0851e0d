package api

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Courses     string `json:"courses"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
}

// UpdateCourseRequest carries a partial merge: nil fields are left
// untouched, supplied fields are re-validated.
type UpdateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Courses     *string `json:"courses"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
}
