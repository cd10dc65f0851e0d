// Package validation holds the pure upload-file checks, kept separate from
// the storage call so the gate is testable without a live provider.
package validation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// Allow-list of image formats, matched against both the filename extension
// and the declared content type. Either check failing rejects the file
// before any bytes reach the provider.
var (
	allowedExtensions = map[string]bool{
		"jpg":  true,
		"jpeg": true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
)

// ValidateImage runs the per-file gate: extension and declared MIME type
// must both be on the allow-list, and the payload must not exceed maxSize.
func ValidateImage(fileHeader *multipart.FileHeader, maxSize int64) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: extension %q (file: %s)", ErrInvalidFileType, ext, fileHeader.Filename)
	}

	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return err
	}
	if !allowedMimeTypes[mimeType] {
		return fmt.Errorf("%w: content type %q (file: %s)", ErrInvalidFileType, mimeType, fileHeader.Filename)
	}

	if fileHeader.Size > maxSize {
		return fmt.Errorf("%w: file %s exceeds the limit of %.0f MB", ErrPayloadTooLarge, fileHeader.Filename, FormatSizeMB(maxSize))
	}

	return nil
}

// ValidateImages runs the same per-file gate over a batch. An empty batch
// is a single aggregate error; every file must pass before any is stored.
func ValidateImages(fileHeaders []*multipart.FileHeader, maxFiles int, maxSize int64) error {
	if len(fileHeaders) == 0 {
		return ErrNoFile
	}
	if len(fileHeaders) > maxFiles {
		return fmt.Errorf("%w: at most %d files per request", ErrTooManyFiles, maxFiles)
	}
	for _, fileHeader := range fileHeaders {
		if err := ValidateImage(fileHeader, maxSize); err != nil {
			return err
		}
	}
	return nil
}

// DetectMimeType returns the declared Content-Type, falling back to the
// filename extension when the client sent nothing useful.
func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detected := mime.TypeByExtension(ext); detected != "" {
			mimeType = detected
		}
	}

	// Strip parameters like "; charset=..."
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	if mimeType == "" {
		return "", fmt.Errorf("%w: could not detect content type (file: %s)", ErrInvalidFileType, fileHeader.Filename)
	}

	return mimeType, nil
}

// ExtractImageDimensions decodes just the image header for width/height.
// Failure to decode is not fatal; the file already passed the gate.
func ExtractImageDimensions(file multipart.File) (*int, *int) {
	cfg, _, err := image.DecodeConfig(file)
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}
	width, height := cfg.Width, cfg.Height
	return &width, &height
}

// FormatSizeMB converts bytes to megabytes for user-facing messages.
func FormatSizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
