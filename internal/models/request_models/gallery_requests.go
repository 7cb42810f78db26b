package request_models

import "github.com/google/uuid"

// FileUpload is one file out of a drag-and-drop or file-picker batch.
type FileUpload struct {
	Filename string
	MimeType string
	Data     []byte
}

type UpdateImageRequest struct {
	ID             uuid.UUID `json:"id" binding:"required"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	AltText        string    `json:"alt_text"`
	Caption        string    `json:"caption"`
	Tags           []string  `json:"tags"`
	IsProfilePhoto bool      `json:"is_profile_photo"`
}
