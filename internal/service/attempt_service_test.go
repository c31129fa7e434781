package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
	"github.com/yourusername/formbuilder-api/internal/repository/kvstore"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// attemptFixture собирает сервисы поверх in-memory хранилища
type attemptFixture struct {
	forms     *kvstore.FormRepo
	questions *kvstore.QuestionRepo
	responses *kvstore.ResponseRepo
	users     *kvstore.UserRepo
	service   *AttemptService
}

func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()
	kv := storage.NewMemoryKV()

	forms := kvstore.NewFormRepo(kv)
	questions := kvstore.NewQuestionRepo(kv)
	responses := kvstore.NewResponseRepo(kv)
	users := kvstore.NewUserRepo(kv)

	responseService := NewResponseService(
		responses,
		kvstore.NewCertificateRepo(kv),
		kvstore.NewNotificationRepo(kv),
		nil,
		&NoopEmailNotifier{},
	)

	return &attemptFixture{
		forms:     forms,
		questions: questions,
		responses: responses,
		users:     users,
		service:   NewAttemptService(forms, questions, responses, users, responseService),
	}
}

// seedQuiz создает опубликованный квиз с двумя вопросами по 1 баллу
func (f *attemptFixture) seedQuiz(t *testing.T, allowRetake bool) (*entity.Form, []entity.Question) {
	t.Helper()
	now := time.Now()
	form := &entity.Form{
		ID:          uuid.New().String(),
		Title:       "Тестовый квиз",
		Mode:        entity.FormModeQuiz,
		ShowResults: true,
		AllowRetake: allowRetake,
		Status:      entity.FormStatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, f.forms.Upsert(form))

	correctA := entity.TextAnswer("Paris")
	correctB := entity.TextAnswer("True")
	questions := []entity.Question{
		{
			ID:            uuid.New().String(),
			FormID:        form.ID,
			Text:          "Capital of France?",
			Type:          entity.QuestionTypeSingleChoice,
			Options:       []string{"Paris", "London"},
			CorrectAnswer: &correctA,
			Points:        1,
			Order:         0,
		},
		{
			ID:            uuid.New().String(),
			FormID:        form.ID,
			Text:          "The Earth is round",
			Type:          entity.QuestionTypeTrueFalse,
			Options:       []string{"True", "False"},
			CorrectAnswer: &correctB,
			Points:        1,
			Order:         1,
		},
	}
	require.NoError(t, f.questions.UpsertBatch(questions))
	return form, questions
}

func TestAttemptService_SubmitQuiz(t *testing.T) {
	// Arrange
	f := newAttemptFixture(t)
	form, questions := f.seedQuiz(t, true)

	answers := map[string]entity.Answer{
		questions[0].ID: entity.TextAnswer("Paris"),
		questions[1].ID: entity.TextAnswer("False"),
	}

	// Act
	result, err := f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"}, answers, 42)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result.Response)
	require.True(t, result.Response.HasScore(), "квиз должен получить скоринговые поля")
	assert.Equal(t, 1, *result.Response.Score)
	assert.Equal(t, 2, *result.Response.MaxScore)
	assert.Equal(t, 42, result.Response.TimeTakenSec)

	// show_results=true - участник видит разбор
	require.NotNil(t, result.Summary)
	assert.Equal(t, 1, result.Summary.Score)
	assert.Len(t, result.Summary.Verdicts, 2)

	stored, err := f.responses.GetByFormID(form.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestAttemptService_SubmitSurveyHasNoScore(t *testing.T) {
	f := newAttemptFixture(t)
	now := time.Now()
	form := &entity.Form{
		ID:          uuid.New().String(),
		Title:       "Опрос",
		Mode:        entity.FormModeSurvey,
		ShowResults: true,
		Status:      entity.FormStatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, f.forms.Upsert(form))
	question := entity.Question{
		ID:     uuid.New().String(),
		FormID: form.ID,
		Text:   "Оцените сервис",
		Type:   entity.QuestionTypeRating,
		Order:  0,
	}
	require.NoError(t, f.questions.Upsert(&question))

	result, err := f.service.Submit(form.ID, RespondentInfo{Name: "Анна", Email: "anna@example.com"},
		map[string]entity.Answer{question.ID: entity.NumberAnswer(5)}, 10)

	require.NoError(t, err)
	assert.False(t, result.Response.HasScore(), "опрос не несет скоринговых полей")
	assert.Nil(t, result.Summary, "для опроса разбор не строится даже при show_results")
}

func TestAttemptService_RetakeBlocked(t *testing.T) {
	// Arrange: квиз с запретом повторного прохождения
	f := newAttemptFixture(t)
	form, questions := f.seedQuiz(t, false)
	answers := map[string]entity.Answer{questions[0].ID: entity.TextAnswer("Paris")}

	_, err := f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"}, answers, 5)
	require.NoError(t, err)

	// Act: вторая попытка с тем же email
	_, err = f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"}, answers, 7)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// Отклоненная попытка не оставляет следов
	stored, err := f.responses.GetByFormID(form.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "повторная попытка не должна сохраняться")
}

func TestAttemptService_RetakeEmailCaseSensitive(t *testing.T) {
	f := newAttemptFixture(t)
	form, questions := f.seedQuiz(t, false)
	answers := map[string]entity.Answer{questions[0].ID: entity.TextAnswer("Paris")}

	_, err := f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"}, answers, 5)
	require.NoError(t, err)

	// Сравнение email точное, с учетом регистра
	_, err = f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "Ivan@example.com"}, answers, 5)
	assert.NoError(t, err, "email в другом регистре не должен блокировать попытку")
}

func TestAttemptService_RetakeAllowedForSurvey(t *testing.T) {
	f := newAttemptFixture(t)
	now := time.Now()
	form := &entity.Form{
		ID:        uuid.New().String(),
		Title:     "Опрос",
		Mode:      entity.FormModeSurvey,
		Status:    entity.FormStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.forms.Upsert(form))

	info := RespondentInfo{Name: "Анна", Email: "anna@example.com"}
	_, err := f.service.Submit(form.ID, info, nil, 1)
	require.NoError(t, err)

	// Правило повторной попытки действует только для квизов
	_, err = f.service.Submit(form.ID, info, nil, 1)
	assert.NoError(t, err)
}

func TestAttemptService_RequiredAnswerMissing(t *testing.T) {
	f := newAttemptFixture(t)
	form, questions := f.seedQuiz(t, true)

	// Делаем первый вопрос обязательным
	questions[0].Required = true
	require.NoError(t, f.questions.Upsert(&questions[0]))

	_, err := f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"},
		map[string]entity.Answer{questions[1].ID: entity.TextAnswer("True")}, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	stored, err := f.responses.GetByFormID(form.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAttemptService_RequireAllAnswered(t *testing.T) {
	f := newAttemptFixture(t)
	form, questions := f.seedQuiz(t, true)
	form.RequireAllAnswered = true
	require.NoError(t, f.forms.Upsert(form))

	// Пробельный текст считается пустым ответом
	_, err := f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"},
		map[string]entity.Answer{
			questions[0].ID: entity.TextAnswer("Paris"),
			questions[1].ID: entity.TextAnswer("   "),
		}, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAttemptService_UnpublishedFormHidden(t *testing.T) {
	f := newAttemptFixture(t)
	now := time.Now()
	form := &entity.Form{
		ID:        uuid.New().String(),
		Title:     "Черновик",
		Mode:      entity.FormModeQuiz,
		Status:    entity.FormStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.forms.Upsert(form))

	// Черновик для участников не существует
	_, _, err := f.service.GetPublicForm(form.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"}, nil, 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAttemptService_SubmitValidation(t *testing.T) {
	f := newAttemptFixture(t)
	form, _ := f.seedQuiz(t, true)

	// Имя и email обязательны
	_, err := f.service.Submit(form.ID, RespondentInfo{Name: "", Email: "ivan@example.com"}, nil, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "  "}, nil, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Отрицательное время не принимается
	_, err = f.service.Submit(form.ID, RespondentInfo{Name: "Иван", Email: "ivan@example.com"}, nil, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
