package validation

import (
	"fmt"
	"net/http"
)

// ValidateAndParseMultipart enforces the request size ceiling and parses the
// multipart form. MaxBytesReader stops reading at the limit, so an oversize
// body never exhausts server resources regardless of what the client claims.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrPayloadTooLarge)
	}

	return nil
}

// CalculateMaxRequestSize adds headroom for form fields and multipart
// framing on top of the raw file budget.
func CalculateMaxRequestSize(maxFileBytes int64, bufferBytes int64) int64 {
	return maxFileBytes + bufferBytes
}
