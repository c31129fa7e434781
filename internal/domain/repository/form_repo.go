package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// FormRepository определяет методы для работы с формами.
// Upsert реализует семантику хранилища: замена по id при совпадении,
// иначе добавление в конец коллекции.
type FormRepository interface {
	GetAll() ([]entity.Form, error)
	GetByID(id string) (*entity.Form, error)
	GetByStatus(status string) ([]entity.Form, error)
	Upsert(form *entity.Form) error
	Delete(id string) error
}
