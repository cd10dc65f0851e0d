package domain

import "io"

// PendingUpload is a validated file on its way to the object-storage
// provider. Data is consumed exactly once by the provider's Store call.
type PendingUpload struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Data        io.Reader
}

// StoredObject is the provider's acknowledgement of a stored file.
// RemoteId is opaque: the system replays it on deletion but never
// interprets it.
type StoredObject struct {
	RemoteId string
	URL      string
}

// UploadedAsset is the reference returned to callers after an upload.
// The provider owns the bytes; nothing is persisted here. Width and
// Height are nil when the image header could not be decoded.
type UploadedAsset struct {
	RemoteId         string
	URL              string
	OriginalFilename string
	Width            *int
	Height           *int
}
