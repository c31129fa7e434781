package kvstore

import (
	"sort"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	questions *collection[entity.Question]
}

// NewQuestionRepo создает репозиторий вопросов
func NewQuestionRepo(kv storage.KV) *QuestionRepo {
	return &QuestionRepo{
		questions: newCollection(kv, keyQuestions, func(q *entity.Question) string { return q.ID }),
	}
}

// GetByID возвращает вопрос по id
func (r *QuestionRepo) GetByID(id string) (*entity.Question, error) {
	return r.questions.find(id)
}

// GetAll возвращает вопросы всех форм
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	return r.questions.all()
}

// GetByFormID возвращает вопросы формы, отсортированные по order
func (r *QuestionRepo) GetByFormID(formID string) ([]entity.Question, error) {
	questions, err := r.questions.filter(func(q *entity.Question) bool { return q.FormID == formID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})
	return questions, nil
}

// Upsert заменяет вопрос по id или добавляет новый
func (r *QuestionRepo) Upsert(question *entity.Question) error {
	return r.questions.upsert(question)
}

// UpsertBatch сливает пачку вопросов одной перезаписью коллекции
func (r *QuestionRepo) UpsertBatch(batch []entity.Question) error {
	return r.questions.upsertBatch(batch)
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id string) error {
	return r.questions.deleteWhere(func(q *entity.Question) bool { return q.ID == id })
}

// DeleteByFormID удаляет все вопросы формы
func (r *QuestionRepo) DeleteByFormID(formID string) error {
	return r.questions.deleteWhere(func(q *entity.Question) bool { return q.FormID == formID })
}
