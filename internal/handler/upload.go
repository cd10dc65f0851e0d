package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/utils"
	"github.com/vmss-tech/vmss-backend/internal/validation"
)

// multipartBufferBytes is headroom for form fields and multipart framing
// on top of the raw file size limit.
const multipartBufferBytes = 1 << 20

func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxSize := validation.CalculateMaxRequestSize(h.cfg.Upload.MaxFileSizeBytes, multipartBufferBytes)
	if err := validation.ValidateAndParseMultipart(r, w, maxSize); err != nil {
		utils.WriteErrorAndStatusCode(w, errors.NewValidation(err.Error()))
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.WriteErrorAndStatusCode(w, errors.NewValidation("No file uploaded"))
		return
	}

	asset, err := h.uploads.UploadOne(r.Context(), files[0])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.UploadImageResponse{
		Success:  true,
		ImageUrl: asset.URL,
		Filename: asset.OriginalFilename,
		RemoteId: asset.RemoteId,
		Width:    asset.Width,
		Height:   asset.Height,
	})
}

func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	maxFiles := int64(h.cfg.Upload.MaxFilesPerBatch)
	maxSize := validation.CalculateMaxRequestSize(h.cfg.Upload.MaxFileSizeBytes*maxFiles, multipartBufferBytes)
	if err := validation.ValidateAndParseMultipart(r, w, maxSize); err != nil {
		utils.WriteErrorAndStatusCode(w, errors.NewValidation(err.Error()))
		return
	}

	files := r.MultipartForm.File["images"]

	assets, err := h.uploads.UploadMany(r.Context(), files)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	images := make([]api.UploadedImage, 0, len(assets))
	for _, asset := range assets {
		images = append(images, api.UploadedImage{
			Url:      asset.URL,
			Filename: asset.OriginalFilename,
			RemoteId: asset.RemoteId,
			Width:    asset.Width,
			Height:   asset.Height,
		})
	}

	writeJSON(w, http.StatusOK, api.UploadImagesResponse{Success: true, Images: images})
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	remoteId := chi.URLParam(r, "publicId")

	if err := h.uploads.Delete(r.Context(), remoteId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteImageResponse{
		Success: true,
		Message: "File deleted successfully",
	})
}
