package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с респондентами
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	Upsert(user *entity.User) error
}
