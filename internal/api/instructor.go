package api

type CreateInstructorRequest struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Expertise   string `json:"expertise" validate:"required"`
	Experience  string `json:"experience" validate:"required"`
}

type UpdateInstructorRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Expertise   *string `json:"expertise" validate:"omitempty,min=1"`
	Experience  *string `json:"experience" validate:"omitempty,min=1"`
}
