package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// AdminUserRepository определяет методы для работы с администраторами
type AdminUserRepository interface {
	GetByEmail(email string) (*entity.AdminUser, error)
	Upsert(admin *entity.AdminUser) error
	Count() (int, error)
}
