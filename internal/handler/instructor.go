package handler

import (
	"net/http"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/utils"
)

func (h *Handler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.instructors.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, instructors)
}

func (h *Handler) GetInstructor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "Instructor not found")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	instructor, err := h.instructors.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, instructor)
}

func (h *Handler) CreateInstructor(w http.ResponseWriter, r *http.Request) {
	var body api.CreateInstructorRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	instructor, err := h.instructors.Create(body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, instructor)
}

func (h *Handler) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "Instructor not found")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateInstructorRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	instructor, err := h.instructors.Update(id, body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, instructor)
}

func (h *Handler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "Instructor not found")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.instructors.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Instructor deleted successfully"})
}
