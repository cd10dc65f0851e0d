package handler

import (
	"net/http"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/utils"
)

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "Contact not found")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.contacts.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// CreateContact is the only unauthenticated mutation. Submissions come
// from the public site's contact form.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var body api.CreateContactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.contacts.Create(body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "Contact not found")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateContactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.contacts.Update(id, body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "Contact not found")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.contacts.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Contact deleted successfully"})
}
