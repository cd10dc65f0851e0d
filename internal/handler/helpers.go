package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vmss-tech/vmss-backend/internal/errors"
)

// parseIdParam reads the {id} route parameter. An unparsable id can never
// match a record, so it maps onto the entity's 404 rather than a 400.
func parseIdParam(r *http.Request, notFoundMessage string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.NewNotFound(notFoundMessage)
	}
	return id, nil
}
