package request_models

import "github.com/google/uuid"

type CreateRetreatRequest struct {
	Title             string  `json:"title" binding:"required"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           string  `json:"end_date" binding:"required"`
	Location          string  `json:"location"`
	VenueName         string  `json:"venue_name"`
	Capacity          int     `json:"capacity"`
	Price             float64 `json:"price"`
	MemberPrice       float64 `json:"member_price"`
	EarlyBirdPrice    float64 `json:"early_bird_price"`
	EarlyBirdDeadline string  `json:"early_bird_deadline"`
	DepositAmount     float64 `json:"deposit_amount"`
	Active            *bool   `json:"active"`
	Featured          bool    `json:"featured"`
	GalleryImages     string  `json:"gallery_images"`
}

type UpdateRetreatRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateRetreatRequest
}

type CreateRegistrationRequest struct {
	RetreatID uuid.UUID `json:"retreat_id" binding:"required"`
	UserName  string    `json:"user_name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string  `json:"payment_status" binding:"required"`
	AmountPaid    float64 `json:"amount_paid"`
}
