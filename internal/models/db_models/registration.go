package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentPending     = "pending"
	PaymentDepositPaid = "deposit_paid"
	PaymentPaid        = "paid"
	PaymentRefunded    = "refunded"
)

type Registration struct {
	BaseModel
	RetreatID        uuid.UUID `gorm:"type:uuid;index"`
	UserName         string
	Email            string
	PaymentStatus    string `gorm:"default:pending"`
	AmountPaid       float64
	BalanceDue       float64
	RegistrationDate time.Time
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentDepositPaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}
