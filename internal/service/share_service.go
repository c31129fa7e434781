package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
)

// sharePayload - формат межустройственного обмена формами:
// base64(JSON({form, questions, timestamp})). Имена ключей
// зафиксированы для совместимости с уже разосланными ссылками.
type sharePayload struct {
	Form      entity.Form       `json:"form"`
	Questions []entity.Question `json:"questions"`
	Timestamp int64             `json:"timestamp"`
}

// ShareService кодирует форму с вопросами в переносимый blob
// и импортирует такой blob в локальное хранилище.
type ShareService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	activityRepo repository.ActivityLogRepository
}

// NewShareService создает сервис обмена формами
func NewShareService(
	formRepo repository.FormRepository,
	questionRepo repository.QuestionRepository,
	activityRepo repository.ActivityLogRepository,
) *ShareService {
	return &ShareService{
		formRepo:     formRepo,
		questionRepo: questionRepo,
		activityRepo: activityRepo,
	}
}

// ExportBlob сериализует форму и ее вопросы в base64-блоб
func (s *ShareService) ExportBlob(formID string) (string, error) {
	form, err := s.formRepo.GetByID(formID)
	if err != nil {
		return "", err
	}
	questions, err := s.questionRepo.GetByFormID(formID)
	if err != nil {
		return "", err
	}

	payload := sharePayload{
		Form:      *form,
		Questions: questions,
		Timestamp: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ImportBlob декодирует блоб и сохраняет форму с вопросами в локальное
// хранилище. Значения полей не изменяются; запись идет через upsert,
// поэтому повторный импорт той же ссылки перезаписывает форму, а не
// дублирует ее.
func (s *ShareService) ImportBlob(actor, blob string) (*entity.Form, []entity.Question, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: share blob is not valid base64", apperrors.ErrValidation)
	}

	var payload sharePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: share blob is not valid JSON", apperrors.ErrValidation)
	}
	if payload.Form.ID == "" {
		return nil, nil, fmt.Errorf("%w: share blob carries no form", apperrors.ErrValidation)
	}
	if err := payload.Form.Validate(); err != nil {
		return nil, nil, err
	}

	if err := s.formRepo.Upsert(&payload.Form); err != nil {
		return nil, nil, fmt.Errorf("failed to import form: %w", err)
	}
	if err := s.questionRepo.UpsertBatch(payload.Questions); err != nil {
		return nil, nil, fmt.Errorf("failed to import questions: %w", err)
	}

	s.logImport(actor, payload.Form.ID, payload.Form.Title)
	return &payload.Form, payload.Questions, nil
}

func (s *ShareService) logImport(actor, formID, title string) {
	entry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		Actor:     actor,
		Action:    entity.ActivityFormImported,
		SubjectID: formID,
		Detail:    title,
		CreatedAt: time.Now(),
	}
	if err := s.activityRepo.Append(entry); err != nil {
		log.Printf("[ShareService] Не удалось записать журнал импорта формы %s: %v", formID, err)
	}
}
