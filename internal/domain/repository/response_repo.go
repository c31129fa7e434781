package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// ResponseRepository определяет методы для работы с прохождениями
type ResponseRepository interface {
	GetByID(id string) (*entity.Response, error)
	GetByFormID(formID string) ([]entity.Response, error)
	Upsert(response *entity.Response) error
	Delete(id string) error
	DeleteByFormID(formID string) error
}
