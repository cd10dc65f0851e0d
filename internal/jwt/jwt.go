package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/logger"
)

type Service interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*Claims, error)
}

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	UserId domain.UserId
	Email  domain.Email
	Role   domain.Role
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey: secretKey, ttl: ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":   user.Id,
		"email": user.Email,
		"role":  string(domain.RoleAdmin),
		"iat":   now.Unix(),
		"exp":   now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", &internal_errors.ErrorWithStatusCode{Message: "Can't create token", StatusCode: 500}
	}

	return tokenString, nil
}

// DecodeToken verifies signature, shape and expiry. All three failures
// collapse into the same unauthorized outcome so callers can't probe which
// check failed.
func (j *Jwt) DecodeToken(jwtStr string) (*Claims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, invalidToken()
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, invalidToken()
	}
	if !token.Valid {
		return nil, invalidToken()
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, invalidToken()
	}

	uid, ok := mapClaims["uid"].(float64)
	if !ok {
		return nil, invalidToken()
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, invalidToken()
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, invalidToken()
	}

	return &Claims{
		UserId: int64(uid),
		Email:  email,
		Role:   domain.Role(role),
	}, nil
}

func invalidToken() *internal_errors.ErrorWithStatusCode {
	return internal_errors.NewUnauthorized("Invalid token")
}
