package domain

import "time"

type (
	UserId = int64
	Email  = string
)

// Role is the capability attached to a verified identity. Only a single
// admin role exists today; modelling it explicitly keeps the auth gate's
// contract "subject has role R" instead of "subject exists".
type Role string

const RoleAdmin Role = "admin"

type User struct {
	Id        UserId    `json:"id"`
	Email     Email     `json:"email"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Credentials struct {
	Email    Email
	Password string
}

// Identity is the verified subject attached to a request context after the
// auth gate accepts a bearer token.
type Identity struct {
	Id    UserId
	Email Email
	Role  Role
}
