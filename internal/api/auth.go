package api

import "github.com/vmss-tech/vmss-backend/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	Id    domain.UserId `json:"id"`
	Email domain.Email  `json:"email"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
