package service

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/vmss-tech/vmss-backend/internal/config"
	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/logger"
	"github.com/vmss-tech/vmss-backend/internal/middleware/metrics"
	"github.com/vmss-tech/vmss-backend/internal/validation"
)

type UploadService interface {
	UploadOne(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error)
	UploadMany(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]domain.UploadedAsset, error)
	Delete(ctx context.Context, remoteId string) error
}

// ObjectStorage is the narrow provider contract the pipeline depends on.
// The pipeline holds no record of stored assets; callers persist the
// returned references if they need them later.
type ObjectStorage interface {
	Store(ctx context.Context, upload domain.PendingUpload) (domain.StoredObject, error)
	Delete(ctx context.Context, remoteId string) error
}

type Upload struct {
	provider ObjectStorage
	cfg      config.UploadConfig
}

var _ UploadService = (*Upload)(nil)

func NewUpload(provider ObjectStorage, cfg config.UploadConfig) *Upload {
	return &Upload{provider: provider, cfg: cfg}
}

// UploadOne validates a single file and streams it to the provider.
// Validation failures reject the request before any bytes leave the
// process; provider failures surface as a distinct 500 kind.
func (s *Upload) UploadOne(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
	if err := validation.ValidateImage(fileHeader, s.cfg.MaxFileSizeBytes); err != nil {
		metrics.ObserveUpload(metrics.UploadRejected)
		return domain.UploadedAsset{}, asValidationError(err)
	}

	asset, err := s.store(ctx, fileHeader)
	if err != nil {
		metrics.ObserveUpload(metrics.UploadFailed)
		return domain.UploadedAsset{}, err
	}
	metrics.ObserveUpload(metrics.UploadAccepted)
	return asset, nil
}

// UploadMany validates every file in the batch up front, then stores each
// independently in submission order. A storage failure mid-batch
// propagates as a request-level failure; already-stored files are not
// rolled back.
func (s *Upload) UploadMany(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]domain.UploadedAsset, error) {
	if err := validation.ValidateImages(fileHeaders, s.cfg.MaxFilesPerBatch, s.cfg.MaxFileSizeBytes); err != nil {
		metrics.ObserveUpload(metrics.UploadRejected)
		return nil, asValidationError(err)
	}

	assets := make([]domain.UploadedAsset, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		asset, err := s.store(ctx, fileHeader)
		if err != nil {
			metrics.ObserveUpload(metrics.UploadFailed)
			return nil, err
		}
		metrics.ObserveUpload(metrics.UploadAccepted)
		assets = append(assets, asset)
	}
	return assets, nil
}

// Delete issues a remote delete for a previously returned identifier.
func (s *Upload) Delete(ctx context.Context, remoteId string) error {
	if remoteId == "" {
		return internal_errors.NewValidation("Missing file identifier")
	}
	return s.provider.Delete(ctx, remoteId)
}

func (s *Upload) store(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Log.Error("failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
		return domain.UploadedAsset{}, &internal_errors.ErrorWithStatusCode{Message: "Failed to read uploaded file", StatusCode: http.StatusInternalServerError}
	}
	defer file.Close()

	contentType, err := validation.DetectMimeType(fileHeader)
	if err != nil {
		return domain.UploadedAsset{}, asValidationError(err)
	}

	width, height := validation.ExtractImageDimensions(file)

	object, err := s.provider.Store(ctx, domain.PendingUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		Data:        file,
	})
	if err != nil {
		return domain.UploadedAsset{}, err
	}

	return domain.UploadedAsset{
		RemoteId:         object.RemoteId,
		URL:              object.URL,
		OriginalFilename: fileHeader.Filename,
		Width:            width,
		Height:           height,
	}, nil
}

// asValidationError maps the pure validation sentinels onto the 400 error
// kind, keeping their descriptive messages.
func asValidationError(err error) error {
	switch {
	case errors.Is(err, validation.ErrNoFile),
		errors.Is(err, validation.ErrTooManyFiles),
		errors.Is(err, validation.ErrInvalidFileType),
		errors.Is(err, validation.ErrPayloadTooLarge):
		return internal_errors.NewValidation(err.Error())
	}
	return err
}
