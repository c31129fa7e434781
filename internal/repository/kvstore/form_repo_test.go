package kvstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

func TestFormRepo_UpsertInsertsAndReplaces(t *testing.T) {
	// Arrange
	repo := NewFormRepo(storage.NewMemoryKV())
	form := &entity.Form{ID: "f1", Title: "Go quiz", Mode: entity.FormModeQuiz, Status: entity.FormStatusDraft}

	// Act: вставка
	require.NoError(t, repo.Upsert(form))

	// Assert
	stored, err := repo.GetByID("f1")
	require.NoError(t, err)
	assert.Equal(t, "Go quiz", stored.Title)

	// Act: замена по id
	form.Title = "Go quiz v2"
	require.NoError(t, repo.Upsert(form))

	// Assert: запись заменена, дубликат не создан
	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1, "upsert по существующему id не должен добавлять запись")
	assert.Equal(t, "Go quiz v2", all[0].Title)
}

func TestFormRepo_GetByID_Missing(t *testing.T) {
	repo := NewFormRepo(storage.NewMemoryKV())

	_, err := repo.GetByID("absent")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFormRepo_GetAll_EmptyStore(t *testing.T) {
	repo := NewFormRepo(storage.NewMemoryKV())

	forms, err := repo.GetAll()
	require.NoError(t, err, "отсутствующая коллекция не должна давать ошибку")
	assert.Empty(t, forms)
}

func TestFormRepo_GetByStatus(t *testing.T) {
	repo := NewFormRepo(storage.NewMemoryKV())
	require.NoError(t, repo.Upsert(&entity.Form{ID: "f1", Status: entity.FormStatusDraft}))
	require.NoError(t, repo.Upsert(&entity.Form{ID: "f2", Status: entity.FormStatusPublished}))
	require.NoError(t, repo.Upsert(&entity.Form{ID: "f3", Status: entity.FormStatusPublished}))

	published, err := repo.GetByStatus(entity.FormStatusPublished)
	require.NoError(t, err)
	assert.Len(t, published, 2)
}

func TestFormRepo_Delete(t *testing.T) {
	repo := NewFormRepo(storage.NewMemoryKV())
	require.NoError(t, repo.Upsert(&entity.Form{ID: "f1"}))
	require.NoError(t, repo.Upsert(&entity.Form{ID: "f2"}))

	require.NoError(t, repo.Delete("f1"))

	_, err := repo.GetByID("f1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFormRepo_GetAll_NewestFirst(t *testing.T) {
	repo := NewFormRepo(storage.NewMemoryKV())
	now := time.Now()
	require.NoError(t, repo.Upsert(&entity.Form{ID: "old", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Upsert(&entity.Form{ID: "new", CreatedAt: now}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
}
