package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

func TestQuestionRepo_GetByFormID_OrderedByOrder(t *testing.T) {
	// Arrange: вопросы добавлены не по порядку
	repo := NewQuestionRepo(storage.NewMemoryKV())
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q3", FormID: "f1", Order: 2}))
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q1", FormID: "f1", Order: 0}))
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q2", FormID: "f1", Order: 1}))
	require.NoError(t, repo.Upsert(&entity.Question{ID: "other", FormID: "f2", Order: 0}))

	// Act
	questions, err := repo.GetByFormID("f1")

	// Assert: только вопросы формы, по возрастанию order
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, []string{"q1", "q2", "q3"}, []string{questions[0].ID, questions[1].ID, questions[2].ID})
}

func TestQuestionRepo_UpsertBatch(t *testing.T) {
	repo := NewQuestionRepo(storage.NewMemoryKV())
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q1", FormID: "f1", Text: "old"}))

	batch := []entity.Question{
		{ID: "q1", FormID: "f1", Text: "replaced"},
		{ID: "q2", FormID: "f1", Text: "added"},
	}
	require.NoError(t, repo.UpsertBatch(batch))

	questions, err := repo.GetByFormID("f1")
	require.NoError(t, err)
	require.Len(t, questions, 2)

	q1, err := repo.GetByID("q1")
	require.NoError(t, err)
	assert.Equal(t, "replaced", q1.Text, "батч должен заменять записи с совпадающим id")
}

func TestQuestionRepo_DeleteByFormID(t *testing.T) {
	repo := NewQuestionRepo(storage.NewMemoryKV())
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q1", FormID: "f1"}))
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q2", FormID: "f1"}))
	require.NoError(t, repo.Upsert(&entity.Question{ID: "q3", FormID: "f2"}))

	require.NoError(t, repo.DeleteByFormID("f1"))

	left, err := repo.GetByFormID("f1")
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := repo.GetByFormID("f2")
	require.NoError(t, err)
	assert.Len(t, other, 1, "вопросы других форм должны остаться")
}
