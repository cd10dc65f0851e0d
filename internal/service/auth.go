package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	"github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/jwt"
	"github.com/vmss-tech/vmss-backend/internal/logger"
)

type AuthService interface {
	Login(creds domain.Credentials) (string, domain.User, error)
	Register(creds domain.Credentials) (domain.UserId, error)
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	User(email domain.Email) (domain.User, error)
	UpdatePassword(email domain.Email, passHash string) error
}

type TokenIssuer interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     TokenIssuer
}

var _ AuthService = (*Auth)(nil)
var _ TokenIssuer = (*jwt.Jwt)(nil)

func NewAuth(storage AuthStorage, jwt TokenIssuer) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Login verifies credentials and mints an access token. Unknown email and
// wrong password both surface as the same 401 so existing accounts are
// not enumerable.
func (a *Auth) Login(creds domain.Credentials) (string, domain.User, error) {
	email := strings.ToLower(creds.Email)

	invalidCredentials := errors.NewUnauthorized("Invalid credentials")

	user, err := a.storage.User(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", domain.User{}, invalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		// Covers both a mismatch and a malformed stored hash.
		logger.Log.Debug("password verification failed", "error", err)
		return "", domain.User{}, invalidCredentials
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}

// Register creates a user with a freshly salted hash. Not exposed over
// HTTP; used by the administrative seed path.
func (a *Auth) Register(creds domain.Credentials) (domain.UserId, error) {
	if creds.Password == "" {
		return -1, errors.NewValidation("Password must not be empty")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return -1, err
	}

	return a.storage.SaveUser(domain.User{
		Email:    strings.ToLower(creds.Email),
		PassHash: string(passHash),
	})
}
