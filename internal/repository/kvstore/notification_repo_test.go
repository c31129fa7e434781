package kvstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

func TestNotificationRepo_ListNewestFirst(t *testing.T) {
	repo := NewNotificationRepo(storage.NewMemoryKV())
	require.NoError(t, repo.Append(&entity.Notification{ID: "n1"}))
	require.NoError(t, repo.Append(&entity.Notification{ID: "n2"}))
	require.NoError(t, repo.Append(&entity.Notification{ID: "n3"}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n3", list[0].ID, "последнее добавленное уведомление должно быть первым")
	assert.Equal(t, "n1", list[2].ID)
}

func TestNotificationRepo_FIFOCap(t *testing.T) {
	// Arrange
	repo := NewNotificationRepo(storage.NewMemoryKV())

	// Act: добавляем больше лимита
	for i := 0; i < entity.NotificationLimit+10; i++ {
		require.NoError(t, repo.Append(&entity.Notification{ID: fmt.Sprintf("n%03d", i)}))
	}

	// Assert: размер не превышает лимит, вытеснены самые старые
	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, entity.NotificationLimit, "список уведомлений не должен превышать лимит")
	assert.Equal(t, fmt.Sprintf("n%03d", entity.NotificationLimit+9), list[0].ID, "новейшее уведомление должно сохраниться")
	assert.Equal(t, "n010", list[len(list)-1].ID, "десять самых старых должны быть вытеснены")
}
