package db_models

import "time"

type Retreat struct {
	BaseModel
	Title             string
	Slug              string `gorm:"index"`
	StartDate         time.Time
	EndDate           time.Time `gorm:"index"`
	Location          string
	VenueName         string
	Capacity          int
	Price             float64
	MemberPrice       float64
	EarlyBirdPrice    float64
	EarlyBirdDeadline *time.Time
	DepositAmount     float64
	Active            bool `gorm:"default:true"`
	Featured          bool
	// JSON-encoded list of gallery image ids shown on the retreat page.
	GalleryImages string `gorm:"type:text"`

	Registrations []Registration
}
