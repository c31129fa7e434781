package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
	"github.com/yourusername/formbuilder-api/internal/service/scoring"
)

// RespondentInfo - идентичность участника, фиксируемая на одну попытку
type RespondentInfo struct {
	Name   string
	Email  string
	RollNo string
}

// SubmissionResult - итог обработки отправленной попытки
type SubmissionResult struct {
	Response *entity.Response
	// Summary заполняется только для квизов и только если форма
	// разрешает показ результатов участнику
	Summary *scoring.Summary
}

// AttemptService управляет потоком прохождения: выдача опубликованной
// формы с вопросами, проверка повторной попытки и прием отправки.
type AttemptService struct {
	formRepo        repository.FormRepository
	questionRepo    repository.QuestionRepository
	responseRepo    repository.ResponseRepository
	userRepo        repository.UserRepository
	responseService *ResponseService
	rng             *rand.Rand
}

// NewAttemptService создает сервис прохождения
func NewAttemptService(
	formRepo repository.FormRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	userRepo repository.UserRepository,
	responseService *ResponseService,
) *AttemptService {
	return &AttemptService{
		formRepo:        formRepo,
		questionRepo:    questionRepo,
		responseRepo:    responseRepo,
		userRepo:        userRepo,
		responseService: responseService,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetPublicForm возвращает опубликованную форму и ее вопросы в порядке
// показа (при включенном перемешивании - в случайном порядке).
// Неопубликованные формы для участников не существуют.
func (s *AttemptService) GetPublicForm(formID string) (*entity.Form, []entity.Question, error) {
	form, err := s.formRepo.GetByID(formID)
	if err != nil {
		return nil, nil, err
	}
	if !form.IsPublished() {
		return nil, nil, apperrors.ErrNotFound
	}

	questions, err := s.questionRepo.GetByFormID(formID)
	if err != nil {
		return nil, nil, err
	}

	if form.Shuffle {
		s.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	return form, questions, nil
}

// CheckRetake применяет правило повторного прохождения: для квиза с
// allow_retake=false новая попытка отклоняется, если по форме уже есть
// прохождение респондента с тем же email. Сравнение email - точное,
// с учетом регистра.
func (s *AttemptService) CheckRetake(form *entity.Form, email string) error {
	if !form.IsQuiz() || form.AllowRetake {
		return nil
	}

	responses, err := s.responseRepo.GetByFormID(form.ID)
	if err != nil {
		return fmt.Errorf("failed to check previous responses: %w", err)
	}

	for i := range responses {
		user, err := s.userRepo.GetByID(responses[i].UserID)
		if err != nil {
			// Осиротевшая запись без респондента не блокирует попытку
			continue
		}
		if user.Email == email {
			return fmt.Errorf("%w: retake is not allowed for this form", apperrors.ErrConflict)
		}
	}
	return nil
}

// Submit принимает завершенную попытку: проверяет идентичность и
// обязательные ответы, прогоняет проверку ответов для квиза и передает
// результат в ResponseService. Проверка повторной попытки выполняется
// до какой-либо записи.
func (s *AttemptService) Submit(
	formID string,
	respondent RespondentInfo,
	answers map[string]entity.Answer,
	timeTakenSec int,
) (*SubmissionResult, error) {
	form, err := s.formRepo.GetByID(formID)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished() {
		return nil, apperrors.ErrNotFound
	}

	if strings.TrimSpace(respondent.Name) == "" || strings.TrimSpace(respondent.Email) == "" {
		return nil, fmt.Errorf("%w: respondent name and email are required", apperrors.ErrValidation)
	}
	if timeTakenSec < 0 {
		return nil, fmt.Errorf("%w: time taken must not be negative", apperrors.ErrValidation)
	}

	if err := s.CheckRetake(form, respondent.Email); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByFormID(formID)
	if err != nil {
		return nil, err
	}

	if err := validateRequiredAnswers(form, questions, answers); err != nil {
		return nil, err
	}

	// Идентичность фиксируется после всех проверок, чтобы отклоненная
	// попытка не оставляла следов в хранилище
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      respondent.Name,
		Email:     respondent.Email,
		RollNo:    respondent.RollNo,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Upsert(user); err != nil {
		return nil, fmt.Errorf("failed to persist respondent: %w", err)
	}

	var summary *scoring.Summary
	if form.IsQuiz() {
		summary = scoring.Evaluate(questions, answers)
	}

	response, err := s.responseService.SaveResponse(form, user, answers, timeTakenSec, summary)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{Response: response}
	if form.ShowResults {
		result.Summary = summary
	}
	return result, nil
}

// validateRequiredAnswers проверяет, что на все обязательные вопросы
// дан непустой ответ. При require_all_answered обязательны все вопросы.
func validateRequiredAnswers(form *entity.Form, questions []entity.Question, answers map[string]entity.Answer) error {
	for i := range questions {
		q := &questions[i]
		if !q.Required && !form.RequireAllAnswered {
			continue
		}
		if answers[q.ID].IsBlank() {
			return fmt.Errorf("%w: question %q requires an answer", apperrors.ErrValidation, q.Text)
		}
	}
	return nil
}
