package validation

import "errors"

// ErrPayloadTooLarge is returned when a file or request body exceeds size limits
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrInvalidFileType is returned when an uploaded file has a disallowed extension or content type
var ErrInvalidFileType = errors.New("only image files are allowed")

// ErrTooManyFiles is returned when a batch exceeds the per-request file limit
var ErrTooManyFiles = errors.New("too many files")

// ErrNoFile is returned when an upload request carries no files at all
var ErrNoFile = errors.New("no file uploaded")
