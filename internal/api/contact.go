package api

type CreateContactRequest struct {
	FullName         string `json:"fullName" validate:"required"`
	OrganizationType string `json:"organizationType" validate:"required"`
	CityCountry      string `json:"cityCountry" validate:"required"`
	Contact          string `json:"contact" validate:"required"`
	Message          string `json:"message" validate:"required"`
}

type UpdateContactRequest struct {
	FullName         *string `json:"fullName" validate:"omitempty,min=1"`
	OrganizationType *string `json:"organizationType" validate:"omitempty,min=1"`
	CityCountry      *string `json:"cityCountry" validate:"omitempty,min=1"`
	Contact          *string `json:"contact" validate:"omitempty,min=1"`
	Message          *string `json:"message" validate:"omitempty,min=1"`
	Status           *string `json:"status" validate:"omitempty,oneof=new contacted resolved"`
}
