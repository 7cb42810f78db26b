package request_models

type UpsertSettingRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value"`
	ValueType   string `json:"value_type"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
}

// SaveCategoryRequest carries only the keys the admin actually touched;
// each one is saved independently, there is no batch transaction.
type SaveCategoryRequest struct {
	Category string                 `json:"category" binding:"required"`
	Changes  []UpsertSettingRequest `json:"changes" binding:"required"`
}
