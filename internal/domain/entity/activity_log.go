package entity

import "time"

// Действия, попадающие в журнал активности
const (
	ActivityFormCreated     = "form_created"
	ActivityFormUpdated     = "form_updated"
	ActivityFormPublished   = "form_published"
	ActivityFormUnpublished = "form_unpublished"
	ActivityFormDeleted     = "form_deleted"
	ActivityFormImported    = "form_imported"
	ActivityResponseDeleted = "response_deleted"
)

// ActivityLog представляет запись журнала действий администратора
type ActivityLog struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"` // email администратора
	Action    string    `json:"action"`
	SubjectID string    `json:"subject_id"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
