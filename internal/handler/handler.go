package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vmss-tech/vmss-backend/internal/config"
	"github.com/vmss-tech/vmss-backend/internal/logger"
	"github.com/vmss-tech/vmss-backend/internal/service"
)

type Handler struct {
	auth        service.AuthService
	courses     service.CourseService
	instructors service.InstructorService
	contacts    service.ContactService
	uploads     service.UploadService
	cfg         *config.Config
}

func New(
	auth service.AuthService,
	courses service.CourseService,
	instructors service.InstructorService,
	contacts service.ContactService,
	uploads service.UploadService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		auth:        auth,
		courses:     courses,
		instructors: instructors,
		contacts:    contacts,
		uploads:     uploads,
		cfg:         cfg,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
