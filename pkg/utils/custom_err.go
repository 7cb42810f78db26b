package utils

import "errors"

var (
	ErrSettingNotFound      = errors.New("setting not found")
	ErrInvalidCategory      = errors.New("invalid settings category")
	ErrInvalidJSONValue     = errors.New("value is not valid json")
	ErrImageNotFound        = errors.New("image not found")
	ErrNotAnImage           = errors.New("file is not an image")
	ErrClassNotFound        = errors.New("class not found")
	ErrTemplateNotFound     = errors.New("class template not found")
	ErrInvalidDayOfWeek     = errors.New("day of week must be between 0 and 6")
	ErrRetreatNotFound      = errors.New("retreat not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
)
