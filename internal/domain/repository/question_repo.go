package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	GetByID(id string) (*entity.Question, error)
	// GetAll возвращает вопросы всех форм
	GetAll() ([]entity.Question, error)
	// GetByFormID возвращает вопросы формы, отсортированные по order
	GetByFormID(formID string) ([]entity.Question, error)
	Upsert(question *entity.Question) error
	// UpsertBatch сливает пачку вопросов в коллекцию одной перезаписью
	UpsertBatch(questions []entity.Question) error
	Delete(id string) error
	// DeleteByFormID удаляет все вопросы формы (каскад при удалении формы)
	DeleteByFormID(formID string) error
}
