package response_models

// ImageMeta is everything about a gallery image except its bytes; the
// list endpoint returns only this shape, the payload is fetched per
// image from /gallery/images/:id/data.
type ImageMeta struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AltText        string   `json:"alt_text"`
	Caption        string   `json:"caption"`
	Tags           []string `json:"tags"`
	Size           int64    `json:"size"`
	MimeType       string   `json:"mime_type"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	IsProfilePhoto bool     `json:"is_profile_photo"`
	CreatedAt      int64    `json:"created_at"`
}

// UploadReport summarizes a multi-file batch. A failure on one file
// never aborts the rest of the batch.
type UploadReport struct {
	Uploaded    []ImageMeta `json:"uploaded"`
	Failed      int         `json:"failed"`
	FailedFiles []string    `json:"failed_files,omitempty"`
}
