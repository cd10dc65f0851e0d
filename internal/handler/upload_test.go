package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

type MockUploadService struct {
	MockUploadOne  func(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error)
	MockUploadMany func(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]domain.UploadedAsset, error)
	MockDelete     func(ctx context.Context, remoteId string) error
}

func (m *MockUploadService) UploadOne(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
	if m.MockUploadOne != nil {
		return m.MockUploadOne(ctx, fileHeader)
	}
	return domain.UploadedAsset{}, nil
}

func (m *MockUploadService) UploadMany(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]domain.UploadedAsset, error) {
	if m.MockUploadMany != nil {
		return m.MockUploadMany(ctx, fileHeaders)
	}
	return nil, nil
}

func (m *MockUploadService) Delete(ctx context.Context, remoteId string) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, remoteId)
	}
	return nil
}

// multipartRequest builds a real multipart body with one part per entry
// under the given field name.
func multipartRequest(t *testing.T, url, field string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func uploadRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/upload/image", h.UploadImage)
	r.Post("/upload/images", h.UploadImages)
	r.Delete("/upload/image/{publicId}", h.DeleteImage)
	return r
}

func TestUploadImageHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	router := uploadRouter(h)

	t.Run("successful upload", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockUploadOne: func(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
				assert.Equal(t, "photo.png", fileHeader.Filename)
				return domain.UploadedAsset{
					RemoteId:         "abc123.png",
					URL:              "https://cdn.example.com/vmss/abc123.png",
					OriginalFilename: "photo.png",
				}, nil
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/image", "image", map[string][]byte{"photo.png": []byte("data")}))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.UploadImageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "https://cdn.example.com/vmss/abc123.png", resp.ImageUrl)
		assert.Equal(t, "photo.png", resp.Filename)
		assert.Equal(t, "abc123.png", resp.RemoteId)
	})

	t.Run("response uses the provider identifier key", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockUploadOne: func(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
				return domain.UploadedAsset{RemoteId: "xyz", URL: "u", OriginalFilename: "a.png"}, nil
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/image", "image", map[string][]byte{"a.png": []byte("d")}))

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.Equal(t, "xyz", raw["cloudinaryId"])
	})

	t.Run("no file in form", func(t *testing.T) {
		called := false
		h.uploads = &MockUploadService{
			MockUploadOne: func(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
				called = true
				return domain.UploadedAsset{}, nil
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/image", "image", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No file uploaded"}`, rec.Body.String())
		assert.False(t, called)
	})

	t.Run("wrong field name", func(t *testing.T) {
		h.uploads = &MockUploadService{}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/image", "file", map[string][]byte{"a.png": []byte("d")}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non multipart body", func(t *testing.T) {
		h.uploads = &MockUploadService{}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, createRequest(t, http.MethodPost, "/upload/image", []byte(`{"image": "x"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure from the pipeline", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockUploadOne: func(ctx context.Context, fileHeader *multipart.FileHeader) (domain.UploadedAsset, error) {
				return domain.UploadedAsset{}, internal_errors.NewValidation("only image files are allowed: extension \"exe\" (file: a.exe)")
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/image", "image", map[string][]byte{"a.exe": []byte("d")}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadImagesHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	router := uploadRouter(h)

	t.Run("batch upload", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockUploadMany: func(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]domain.UploadedAsset, error) {
				assets := make([]domain.UploadedAsset, 0, len(fileHeaders))
				for _, fh := range fileHeaders {
					assets = append(assets, domain.UploadedAsset{
						RemoteId:         "id-" + fh.Filename,
						URL:              "https://cdn.example.com/" + fh.Filename,
						OriginalFilename: fh.Filename,
					})
				}
				return assets, nil
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/images", "images",
			map[string][]byte{"a.png": []byte("1"), "b.png": []byte("2")}))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.UploadImagesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Images, 2)
	})

	t.Run("empty batch", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockUploadMany: func(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]domain.UploadedAsset, error) {
				assert.Empty(t, fileHeaders)
				return nil, internal_errors.NewValidation("no file uploaded")
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/upload/images", "images", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteImageHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	router := uploadRouter(h)

	t.Run("successful delete", func(t *testing.T) {
		var deletedId string
		h.uploads = &MockUploadService{
			MockDelete: func(ctx context.Context, remoteId string) error {
				deletedId = remoteId
				return nil
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, createRequest(t, http.MethodDelete, "/upload/image/abc123.png", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abc123.png", deletedId)
		assert.JSONEq(t, `{"success": true, "message": "File deleted successfully"}`, rec.Body.String())
	})

	t.Run("missing remote object", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockDelete: func(ctx context.Context, remoteId string) error {
				return internal_errors.NewNotFound("File not found")
			},
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, createRequest(t, http.MethodDelete, "/upload/image/missing.png", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "File not found"}`, rec.Body.String())
	})
}
