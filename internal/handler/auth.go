package handler

import (
	"net/http"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/domain"
	"github.com/vmss-tech/vmss-backend/internal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, user, err := h.auth.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{
		Token: token,
		User:  api.LoginUser{Id: user.Id, Email: user.Email},
	})
}
