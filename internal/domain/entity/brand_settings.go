package entity

import "time"

// BrandSettings - синглтон настроек оформления (хранится как один
// объект, а не коллекция)
type BrandSettings struct {
	OrgName      string    `json:"org_name"`
	LogoURL      string    `json:"logo_url"`
	PrimaryColor string    `json:"primary_color"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultBrandSettings возвращает настройки по умолчанию,
// когда в хранилище еще ничего не сохранено
func DefaultBrandSettings() *BrandSettings {
	return &BrandSettings{
		OrgName:      "FormBuilder",
		PrimaryColor: "#4f46e5",
	}
}
