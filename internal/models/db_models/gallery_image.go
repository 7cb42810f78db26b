package db_models

import "github.com/lib/pq"

type GalleryImage struct {
	BaseModel
	Title          string
	Description    string
	AltText        string
	Caption        string
	Tags           pq.StringArray `gorm:"type:text[]"`
	Size           int64
	MimeType       string
	Width          int
	Height         int
	IsProfilePhoto bool `gorm:"index"`
	// Binary payload lives in its own column and is never selected by
	// list queries.
	Data []byte `gorm:"type:bytea"`
}
