package response_models

type RetreatResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Slug              string  `json:"slug"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	Location          string  `json:"location"`
	VenueName         string  `json:"venue_name"`
	Capacity          int     `json:"capacity"`
	Price             float64 `json:"price"`
	MemberPrice       float64 `json:"member_price"`
	EarlyBirdPrice    float64 `json:"early_bird_price"`
	EarlyBirdDeadline string  `json:"early_bird_deadline,omitempty"`
	DepositAmount     float64 `json:"deposit_amount"`
	Active            bool    `json:"active"`
	Featured          bool    `json:"featured"`
	GalleryImages     string  `json:"gallery_images,omitempty"`
}

// RetreatList is the derived upcoming/past split; membership is
// computed against "today" at query time, never stored.
type RetreatList struct {
	Upcoming []RetreatResponse `json:"upcoming"`
	Past     []RetreatResponse `json:"past"`
}

type RegistrationResponse struct {
	ID               string  `json:"id"`
	RetreatID        string  `json:"retreat_id"`
	UserName         string  `json:"user_name"`
	Email            string  `json:"email"`
	PaymentStatus    string  `json:"payment_status"`
	AmountPaid       float64 `json:"amount_paid"`
	BalanceDue       float64 `json:"balance_due"`
	RegistrationDate string  `json:"registration_date"`
}
