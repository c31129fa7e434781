package kvstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

func TestAdminUserRepo_PasswordHashSurvivesPersistence(t *testing.T) {
	// Arrange
	repo := NewAdminUserRepo(storage.NewMemoryKV())
	admin := &entity.AdminUser{
		ID:        uuid.New().String(),
		Email:     "admin@example.com",
		Name:      "Admin",
		Role:      entity.AdminRoleOwner,
		CreatedAt: time.Now(),
	}
	require.NoError(t, admin.SetPassword("s3cret-pass"))

	// Act: запись проходит через JSON-сериализацию коллекции
	require.NoError(t, repo.Upsert(admin))
	stored, err := repo.GetByEmail("admin@example.com")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash, "хеш пароля обязан пережить сериализацию")
	assert.True(t, stored.CheckPassword("s3cret-pass"))
	assert.False(t, stored.CheckPassword("wrong"))
}

func TestAdminUserRepo_GetByEmailUnknown(t *testing.T) {
	repo := NewAdminUserRepo(storage.NewMemoryKV())

	_, err := repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
