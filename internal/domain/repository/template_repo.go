package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// TemplateRepository определяет методы для работы с шаблонами форм
type TemplateRepository interface {
	GetAll() ([]entity.FormTemplate, error)
	GetByID(id string) (*entity.FormTemplate, error)
	Upsert(template *entity.FormTemplate) error
}
