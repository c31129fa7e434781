package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/repository/kvstore"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

type exportFixture struct {
	forms     *kvstore.FormRepo
	questions *kvstore.QuestionRepo
	responses *kvstore.ResponseRepo
	users     *kvstore.UserRepo
	service   *ExportService
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	kv := storage.NewMemoryKV()
	forms := kvstore.NewFormRepo(kv)
	questions := kvstore.NewQuestionRepo(kv)
	responses := kvstore.NewResponseRepo(kv)
	users := kvstore.NewUserRepo(kv)
	return &exportFixture{
		forms:     forms,
		questions: questions,
		responses: responses,
		users:     users,
		service:   NewExportService(forms, questions, responses, users),
	}
}

func TestExportService_QuizColumns(t *testing.T) {
	// Arrange
	f := newExportFixture(t)
	now := time.Now()
	form := &entity.Form{
		ID:        uuid.New().String(),
		Title:     "Квиз",
		Mode:      entity.FormModeQuiz,
		Status:    entity.FormStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.forms.Upsert(form))

	questions := []entity.Question{
		{ID: uuid.New().String(), FormID: form.ID, Text: "Вопрос один", Type: entity.QuestionTypeShortText, Order: 0},
		{ID: uuid.New().String(), FormID: form.ID, Text: "Вопрос два", Type: entity.QuestionTypeRating, Order: 1},
	}
	require.NoError(t, f.questions.UpsertBatch(questions))

	user := &entity.User{ID: uuid.New().String(), Name: "Иван", Email: "ivan@example.com", RollNo: "A-17", CreatedAt: now}
	require.NoError(t, f.users.Upsert(user))

	score, maxScore := 3, 4
	response := &entity.Response{
		ID:     uuid.New().String(),
		FormID: form.ID,
		UserID: user.ID,
		Answers: map[string]entity.Answer{
			questions[0].ID: entity.TextAnswer("свободный ответ"),
			questions[1].ID: entity.NumberAnswer(4),
		},
		Score:        &score,
		MaxScore:     &maxScore,
		TimeTakenSec: 95,
		SubmittedAt:  time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, f.responses.Upsert(response))

	// Act
	export, err := f.service.BuildExport(form.ID)

	// Assert: фиксированный порядок колонок
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Name", "Email", "Roll/ID", "Submitted At", "Time Taken (seconds)",
		"Score", "Max Score", "Percentage",
		"Q: Вопрос один", "Q: Вопрос два",
	}, export.Headers)

	require.Len(t, export.Rows, 1)
	row := export.Rows[0]
	assert.Equal(t, "Иван", row[0])
	assert.Equal(t, "ivan@example.com", row[1])
	assert.Equal(t, "A-17", row[2])
	assert.Equal(t, "2026-03-14 10:30:00", row[3])
	assert.Equal(t, "95", row[4])
	assert.Equal(t, "3", row[5])
	assert.Equal(t, "4", row[6])
	assert.Equal(t, "75.0", row[7])
	assert.Equal(t, "свободный ответ", row[8])
	assert.Equal(t, "4", row[9], "числовой ответ выводится без десятичной части")
}

func TestExportService_SurveyOmitsScoreColumns(t *testing.T) {
	f := newExportFixture(t)
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

	question := entity.Question{ID: uuid.New().String(), FormID: form.ID, Text: "Отзыв", Type: entity.QuestionTypeParagraph, Order: 0}
	require.NoError(t, f.questions.Upsert(&question))

	export, err := f.service.BuildExport(form.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Name", "Email", "Roll/ID", "Submitted At", "Time Taken (seconds)",
		"Q: Отзыв",
	}, export.Headers)
	assert.Empty(t, export.Rows)
	assert.Contains(t, export.Filename, "form_"+form.ID+"_responses_")
}

func TestExportService_OrphanedResponse(t *testing.T) {
	// Прохождение без записи респондента выгружается с пустыми полями
	f := newExportFixture(t)
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

	response := &entity.Response{
		ID:           uuid.New().String(),
		FormID:       form.ID,
		UserID:       uuid.New().String(), // несуществующий респондент
		TimeTakenSec: 10,
		SubmittedAt:  now,
	}
	require.NoError(t, f.responses.Upsert(response))

	export, err := f.service.BuildExport(form.ID)
	require.NoError(t, err)
	require.Len(t, export.Rows, 1)
	assert.Equal(t, "", export.Rows[0][0])
	assert.Equal(t, "", export.Rows[0][1])
}
