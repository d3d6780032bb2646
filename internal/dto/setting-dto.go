package dto

type SettingDTO struct {
	ID        uint64 `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	ValueType string `json:"value_type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CreateSettingDTO struct {
	Key       string `json:"key" validate:"required,setting_key"`
	Value     string `json:"value" validate:"required"`
	ValueType string `json:"value_type" validate:"required,oneof=string int bool"`
}

type UpdateSettingDTO struct {
	Value string `json:"value" validate:"required"`
}
