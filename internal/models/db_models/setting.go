package db_models

// Settings categories map one-to-one to the admin panel tabs.
const (
	CategoryGeneral  = "general"
	CategoryHomepage = "homepage"
	CategoryContent  = "content"
	CategoryContact  = "contact"
	CategorySocial   = "social"
)

// Value types replace the old "does it start with { or [" sniffing.
const (
	ValueTypeString = "string"
	ValueTypeJSON   = "json"
	ValueTypeImage  = "image"
)

type Setting struct {
	BaseModel
	Key         string `gorm:"uniqueIndex"`
	Value       string
	ValueType   string `gorm:"default:string"`
	Category    string `gorm:"index"`
	Description string
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryGeneral, CategoryHomepage, CategoryContent, CategoryContact, CategorySocial:
		return true
	}
	return false
}

func ValidValueType(valueType string) bool {
	switch valueType {
	case ValueTypeString, ValueTypeJSON, ValueTypeImage:
		return true
	}
	return false
}
