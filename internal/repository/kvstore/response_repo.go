package kvstore

import (
	"sort"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// ResponseRepo реализует repository.ResponseRepository
type ResponseRepo struct {
	responses *collection[entity.Response]
}

// NewResponseRepo создает репозиторий прохождений
func NewResponseRepo(kv storage.KV) *ResponseRepo {
	return &ResponseRepo{
		responses: newCollection(kv, keyResponses, func(r *entity.Response) string { return r.ID }),
	}
}

// GetByID возвращает прохождение по id
func (r *ResponseRepo) GetByID(id string) (*entity.Response, error) {
	return r.responses.find(id)
}

// GetByFormID возвращает прохождения формы, новые первыми
func (r *ResponseRepo) GetByFormID(formID string) ([]entity.Response, error) {
	responses, err := r.responses.filter(func(resp *entity.Response) bool { return resp.FormID == formID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].SubmittedAt.After(responses[j].SubmittedAt)
	})
	return responses, nil
}

// Upsert заменяет прохождение по id или добавляет новое
func (r *ResponseRepo) Upsert(response *entity.Response) error {
	return r.responses.upsert(response)
}

// Delete удаляет прохождение
func (r *ResponseRepo) Delete(id string) error {
	return r.responses.deleteWhere(func(resp *entity.Response) bool { return resp.ID == id })
}

// DeleteByFormID удаляет все прохождения формы
func (r *ResponseRepo) DeleteByFormID(formID string) error {
	return r.responses.deleteWhere(func(resp *entity.Response) bool { return resp.FormID == formID })
}
