package kvstore

import (
	"sort"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// FormRepo реализует repository.FormRepository
type FormRepo struct {
	forms *collection[entity.Form]
}

// NewFormRepo создает репозиторий форм
func NewFormRepo(kv storage.KV) *FormRepo {
	return &FormRepo{
		forms: newCollection(kv, keyForms, func(f *entity.Form) string { return f.ID }),
	}
}

// GetAll возвращает все формы, новые первыми
func (r *FormRepo) GetAll() ([]entity.Form, error) {
	forms, err := r.forms.all()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(forms, func(i, j int) bool {
		return forms[i].CreatedAt.After(forms[j].CreatedAt)
	})
	return forms, nil
}

// GetByID возвращает форму по id
func (r *FormRepo) GetByID(id string) (*entity.Form, error) {
	return r.forms.find(id)
}

// GetByStatus возвращает формы в заданном статусе
func (r *FormRepo) GetByStatus(status string) ([]entity.Form, error) {
	return r.forms.filter(func(f *entity.Form) bool { return f.Status == status })
}

// Upsert заменяет форму по id или добавляет новую
func (r *FormRepo) Upsert(form *entity.Form) error {
	return r.forms.upsert(form)
}

// Delete удаляет форму
func (r *FormRepo) Delete(id string) error {
	return r.forms.deleteWhere(func(f *entity.Form) bool { return f.ID == id })
}
