package api

// Wire shapes kept compatible with the site frontend, including the
// provider-specific "cloudinaryId" key for the opaque asset identifier.

type UploadImageResponse struct {
	Success  bool   `json:"success"`
	ImageUrl string `json:"imageUrl"`
	Filename string `json:"filename"`
	RemoteId string `json:"cloudinaryId"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
}

type UploadedImage struct {
	Url      string `json:"url"`
	Filename string `json:"filename"`
	RemoteId string `json:"cloudinaryId"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
}

type UploadImagesResponse struct {
	Success bool            `json:"success"`
	Images  []UploadedImage `json:"images"`
}

type DeleteImageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
