package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
)

// FormInput - поля формы, задаваемые автором
type FormInput struct {
	Title              string
	Description        string
	Mode               string
	TimerSec           int
	Shuffle            bool
	RequireAllAnswered bool
	ShowResults        bool
	AllowRetake        bool
	PassingScore       *int
	CertificateEnabled bool
}

// FormService отвечает за авторинг: формы, их вопросы, публикацию
// и инстанцирование шаблонов. Мутации пишутся в журнал активности.
type FormService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	templateRepo repository.TemplateRepository
	activityRepo repository.ActivityLogRepository
}

// NewFormService создает сервис авторинга форм
func NewFormService(
	formRepo repository.FormRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	templateRepo repository.TemplateRepository,
	activityRepo repository.ActivityLogRepository,
) *FormService {
	return &FormService{
		formRepo:     formRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		templateRepo: templateRepo,
		activityRepo: activityRepo,
	}
}

// ListForms возвращает все формы, новые первыми, вместе с количеством
// вопросов по каждой форме
func (s *FormService) ListForms() ([]entity.Form, map[string]int, error) {
	forms, err := s.formRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[string]int, len(forms))
	for i := range questions {
		counts[questions[i].FormID]++
	}
	return forms, counts, nil
}

// GetForm возвращает форму и ее вопросы
func (s *FormService) GetForm(id string) (*entity.Form, []entity.Question, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.questionRepo.GetByFormID(id)
	if err != nil {
		return nil, nil, err
	}
	return form, questions, nil
}

// CreateForm создает черновик формы
func (s *FormService) CreateForm(actor string, input FormInput) (*entity.Form, error) {
	now := time.Now()
	form := &entity.Form{
		ID:                 uuid.New().String(),
		Title:              input.Title,
		Description:        input.Description,
		Mode:               input.Mode,
		TimerSec:           input.TimerSec,
		Shuffle:            input.Shuffle,
		RequireAllAnswered: input.RequireAllAnswered,
		ShowResults:        input.ShowResults,
		AllowRetake:        input.AllowRetake,
		PassingScore:       input.PassingScore,
		CertificateEnabled: input.CertificateEnabled,
		Status:             entity.FormStatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := s.formRepo.Upsert(form); err != nil {
		return nil, fmt.Errorf("failed to persist form: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormCreated, form.ID, form.Title)
	return form, nil
}

// UpdateForm обновляет настройки формы
func (s *FormService) UpdateForm(actor, id string, input FormInput) (*entity.Form, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	form.Title = input.Title
	form.Description = input.Description
	form.Mode = input.Mode
	form.TimerSec = input.TimerSec
	form.Shuffle = input.Shuffle
	form.RequireAllAnswered = input.RequireAllAnswered
	form.ShowResults = input.ShowResults
	form.AllowRetake = input.AllowRetake
	form.PassingScore = input.PassingScore
	form.CertificateEnabled = input.CertificateEnabled
	form.UpdatedAt = time.Now()

	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := s.formRepo.Upsert(form); err != nil {
		return nil, fmt.Errorf("failed to persist form: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormUpdated, form.ID, form.Title)
	return form, nil
}

// PublishForm валидирует форму вместе с вопросами и публикует ее.
// Для квиза каждый вопрос с выбором обязан иметь правильный ответ.
func (s *FormService) PublishForm(actor, id string) (*entity.Form, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByFormID(id)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: cannot publish a form without questions", apperrors.ErrValidation)
	}
	for i := range questions {
		if err := questions[i].Validate(form.IsQuiz()); err != nil {
			return nil, err
		}
	}

	form.Status = entity.FormStatusPublished
	form.UpdatedAt = time.Now()
	if err := s.formRepo.Upsert(form); err != nil {
		return nil, fmt.Errorf("failed to persist form: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormPublished, form.ID, form.Title)
	return form, nil
}

// UnpublishForm возвращает форму в черновик
func (s *FormService) UnpublishForm(actor, id string) (*entity.Form, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	form.Status = entity.FormStatusDraft
	form.UpdatedAt = time.Now()
	if err := s.formRepo.Upsert(form); err != nil {
		return nil, fmt.Errorf("failed to persist form: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormUnpublished, form.ID, form.Title)
	return form, nil
}

// DeleteForm удаляет форму вместе с вопросами и прохождениями
func (s *FormService) DeleteForm(actor, id string) error {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.formRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	if err := s.questionRepo.DeleteByFormID(id); err != nil {
		log.Printf("[FormService] Не удалось каскадно удалить вопросы формы %s: %v", id, err)
	}
	if err := s.responseRepo.DeleteByFormID(id); err != nil {
		log.Printf("[FormService] Не удалось каскадно удалить прохождения формы %s: %v", id, err)
	}
	s.logActivity(actor, entity.ActivityFormDeleted, id, form.Title)
	return nil
}

// AddQuestion добавляет вопрос в конец формы
func (s *FormService) AddQuestion(actor, formID string, question entity.Question) (*entity.Question, error) {
	form, err := s.formRepo.GetByID(formID)
	if err != nil {
		return nil, err
	}
	existing, err := s.questionRepo.GetByFormID(formID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	question.ID = uuid.New().String()
	question.FormID = formID
	question.Order = len(existing) // плотная нумерация с нуля
	question.CreatedAt = now
	question.UpdatedAt = now

	if err := question.Validate(form.IsQuiz()); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Upsert(&question); err != nil {
		return nil, fmt.Errorf("failed to persist question: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormUpdated, formID, "question added")
	return &question, nil
}

// UpdateQuestion обновляет содержимое вопроса (тип, текст, варианты,
// эталон, баллы, обязательность); порядок меняется через Reorder
func (s *FormService) UpdateQuestion(actor string, question entity.Question) (*entity.Question, error) {
	stored, err := s.questionRepo.GetByID(question.ID)
	if err != nil {
		return nil, err
	}
	form, err := s.formRepo.GetByID(stored.FormID)
	if err != nil {
		return nil, err
	}

	question.FormID = stored.FormID
	question.Order = stored.Order
	question.CreatedAt = stored.CreatedAt
	question.UpdatedAt = time.Now()

	if err := question.Validate(form.IsQuiz()); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Upsert(&question); err != nil {
		return nil, fmt.Errorf("failed to persist question: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormUpdated, stored.FormID, "question updated")
	return &question, nil
}

// DeleteQuestion удаляет вопрос и уплотняет нумерацию остальных
func (s *FormService) DeleteQuestion(actor, questionID string) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return err
	}
	if err := s.questionRepo.Delete(questionID); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	// Переиндексация: order остается плотным и нулевым в начале
	remaining, err := s.questionRepo.GetByFormID(question.FormID)
	if err != nil {
		return err
	}
	for i := range remaining {
		remaining[i].Order = i
	}
	if err := s.questionRepo.UpsertBatch(remaining); err != nil {
		return fmt.Errorf("failed to reindex questions: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormUpdated, question.FormID, "question deleted")
	return nil
}

// ReorderQuestions задает новый порядок вопросов формы. Список ids
// должен содержать все вопросы формы ровно по одному разу.
func (s *FormService) ReorderQuestions(actor, formID string, ids []string) error {
	questions, err := s.questionRepo.GetByFormID(formID)
	if err != nil {
		return err
	}
	if len(ids) != len(questions) {
		return fmt.Errorf("%w: reorder list must contain all %d questions", apperrors.ErrValidation, len(questions))
	}

	byID := make(map[string]*entity.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	reordered := make([]entity.Question, 0, len(ids))
	for position, id := range ids {
		q, ok := byID[id]
		if ok {
			delete(byID, id)
		} else {
			return fmt.Errorf("%w: unknown or duplicate question id %s", apperrors.ErrValidation, id)
		}
		q.Order = position
		q.UpdatedAt = time.Now()
		reordered = append(reordered, *q)
	}

	if err := s.questionRepo.UpsertBatch(reordered); err != nil {
		return fmt.Errorf("failed to persist question order: %w", err)
	}
	s.logActivity(actor, entity.ActivityFormUpdated, formID, "questions reordered")
	return nil
}

// ListTemplates возвращает доступные шаблоны форм
func (s *FormService) ListTemplates() ([]entity.FormTemplate, error) {
	return s.templateRepo.GetAll()
}

// CreateFromTemplate инстанцирует шаблон в черновик формы со свежими
// идентификаторами
func (s *FormService) CreateFromTemplate(actor, templateID string) (*entity.Form, error) {
	template, err := s.templateRepo.GetByID(templateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	form := template.Form
	form.ID = uuid.New().String()
	form.Status = entity.FormStatusDraft
	form.CreatedAt = now
	form.UpdatedAt = now

	if err := s.formRepo.Upsert(&form); err != nil {
		return nil, fmt.Errorf("failed to persist form: %w", err)
	}

	questions := make([]entity.Question, len(template.Questions))
	copy(questions, template.Questions)
	for i := range questions {
		questions[i].ID = uuid.New().String()
		questions[i].FormID = form.ID
		questions[i].Order = i
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
	}
	if err := s.questionRepo.UpsertBatch(questions); err != nil {
		return nil, fmt.Errorf("failed to persist template questions: %w", err)
	}

	s.logActivity(actor, entity.ActivityFormCreated, form.ID, "from template "+template.Name)
	return &form, nil
}

// logActivity пишет запись журнала (best-effort)
func (s *FormService) logActivity(actor, action, subjectID, detail string) {
	entry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		Actor:     actor,
		Action:    action,
		SubjectID: subjectID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := s.activityRepo.Append(entry); err != nil {
		log.Printf("[FormService] Не удалось записать журнал активности (%s): %v", action, err)
	}
}
