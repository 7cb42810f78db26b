package response_models

type Setting struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	ValueType   string `json:"value_type"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// SettingsByCategory mirrors the admin panel's tab layout: one bucket
// per fixed category.
type SettingsByCategory map[string][]Setting

// CategorySaveReport is the "N saved, M failed" outcome of a per-key
// save loop. There is no rollback; saved keys stay saved.
type CategorySaveReport struct {
	Saved      int      `json:"saved"`
	Failed     int      `json:"failed"`
	FailedKeys []string `json:"failed_keys,omitempty"`
}
