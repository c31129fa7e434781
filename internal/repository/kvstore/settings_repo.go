package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// BrandSettingsRepo реализует repository.BrandSettingsRepository.
// В отличие от остальных коллекций настройки хранятся как одиночный
// JSON-объект, а не массив.
type BrandSettingsRepo struct {
	kv storage.KV
	mu sync.Mutex
}

// NewBrandSettingsRepo создает репозиторий настроек оформления
func NewBrandSettingsRepo(kv storage.KV) *BrandSettingsRepo {
	return &BrandSettingsRepo{kv: kv}
}

// Get возвращает сохраненные настройки или настройки по умолчанию
func (r *BrandSettingsRepo) Get() (*entity.BrandSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.kv.Get(keyBrandSettings)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return entity.DefaultBrandSettings(), nil
		}
		return nil, fmt.Errorf("failed to read brand settings: %w", err)
	}

	var settings entity.BrandSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode brand settings: %w", err)
	}
	return &settings, nil
}

// Save перезаписывает настройки целиком
func (r *BrandSettingsRepo) Save(settings *entity.BrandSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.UpdatedAt = time.Now()
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode brand settings: %w", err)
	}
	return r.kv.Set(keyBrandSettings, data)
}
