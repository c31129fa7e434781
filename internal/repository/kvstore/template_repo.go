package kvstore

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// TemplateRepo реализует repository.TemplateRepository
type TemplateRepo struct {
	templates *collection[entity.FormTemplate]
}

// NewTemplateRepo создает репозиторий шаблонов форм
func NewTemplateRepo(kv storage.KV) *TemplateRepo {
	return &TemplateRepo{
		templates: newCollection(kv, keyFormTemplates, func(t *entity.FormTemplate) string { return t.ID }),
	}
}

// GetAll возвращает все шаблоны
func (r *TemplateRepo) GetAll() ([]entity.FormTemplate, error) {
	return r.templates.all()
}

// GetByID возвращает шаблон по id
func (r *TemplateRepo) GetByID(id string) (*entity.FormTemplate, error) {
	return r.templates.find(id)
}

// Upsert заменяет шаблон по id или добавляет новый
func (r *TemplateRepo) Upsert(template *entity.FormTemplate) error {
	return r.templates.upsert(template)
}
