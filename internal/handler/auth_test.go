package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

type MockAuthService struct {
	MockLogin    func(creds domain.Credentials) (string, domain.User, error)
	MockRegister func(creds domain.Credentials) (domain.UserId, error)
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, domain.User, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "", domain.User{}, nil
}

func (m *MockAuthService) Register(creds domain.Credentials) (domain.UserId, error) {
	if m.MockRegister != nil {
		return m.MockRegister(creds)
	}
	return 0, nil
}

func TestLoginHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	t.Run("successful login", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, domain.User, error) {
				assert.Equal(t, "admin@vmss.com", creds.Email)
				assert.Equal(t, "admin123", creds.Password)
				return "signed-token", domain.User{Id: 1, Email: "admin@vmss.com"}, nil
			},
		}

		rec := httptest.NewRecorder()
		h.Login(rec, createRequest(t, http.MethodPost, "/api/auth/login",
			[]byte(`{"email": "admin@vmss.com", "password": "admin123"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, int64(1), resp.User.Id)
		assert.Equal(t, "admin@vmss.com", resp.User.Email)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, domain.User, error) {
				return "", domain.User{}, internal_errors.NewUnauthorized("Invalid credentials")
			},
		}

		rec := httptest.NewRecorder()
		h.Login(rec, createRequest(t, http.MethodPost, "/api/auth/login",
			[]byte(`{"email": "admin@vmss.com", "password": "wrong"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid credentials"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		called := false
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, domain.User, error) {
				called = true
				return "", domain.User{}, nil
			},
		}

		rec := httptest.NewRecorder()
		h.Login(rec, createRequest(t, http.MethodPost, "/api/auth/login", []byte(`{"email":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})

	t.Run("missing password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Login(rec, createRequest(t, http.MethodPost, "/api/auth/login",
			[]byte(`{"email": "admin@vmss.com"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Required fields missing or invalid"}`, rec.Body.String())
	})
}
