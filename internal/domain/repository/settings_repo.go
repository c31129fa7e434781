package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// BrandSettingsRepository определяет доступ к синглтону настроек
// оформления. Get возвращает настройки по умолчанию, если в хранилище
// еще ничего не сохранено.
type BrandSettingsRepository interface {
	Get() (*entity.BrandSettings, error)
	Save(settings *entity.BrandSettings) error
}
