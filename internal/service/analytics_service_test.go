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

func TestAnalyticsService_FormAnalytics(t *testing.T) {
	// Arrange: квиз с вопросом-выбором и вопросом-оценкой
	kv := storage.NewMemoryKV()
	forms := kvstore.NewFormRepo(kv)
	questions := kvstore.NewQuestionRepo(kv)
	responses := kvstore.NewResponseRepo(kv)
	service := NewAnalyticsService(forms, questions, responses)

	now := time.Now()
	form := &entity.Form{
		ID:        uuid.New().String(),
		Title:     "Квиз",
		Mode:      entity.FormModeQuiz,
		Status:    entity.FormStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, forms.Upsert(form))

	choice := entity.Question{
		ID:      uuid.New().String(),
		FormID:  form.ID,
		Text:    "Выбор",
		Type:    entity.QuestionTypeSingleChoice,
		Options: []string{"A", "B"},
		Order:   0,
	}
	rating := entity.Question{
		ID:     uuid.New().String(),
		FormID: form.ID,
		Text:   "Оценка",
		Type:   entity.QuestionTypeRating,
		Order:  1,
	}
	require.NoError(t, questions.UpsertBatch([]entity.Question{choice, rating}))

	passed := true
	addResponse := func(option string, ratingValue float64, score int, hasPassed bool) {
		maxScore := 2
		r := &entity.Response{
			ID:     uuid.New().String(),
			FormID: form.ID,
			UserID: uuid.New().String(),
			Answers: map[string]entity.Answer{
				choice.ID: entity.TextAnswer(option),
				rating.ID: entity.NumberAnswer(ratingValue),
			},
			Score:        &score,
			MaxScore:     &maxScore,
			TimeTakenSec: 60,
			SubmittedAt:  now,
		}
		if hasPassed {
			r.Passed = &passed
		}
		require.NoError(t, responses.Upsert(r))
	}
	addResponse("A", 5, 2, true)
	addResponse("A", 4, 2, true)
	addResponse("B", 3, 0, false)

	// Act
	analytics, err := service.FormAnalytics(form.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, analytics.ResponseCount)
	assert.Equal(t, 2, analytics.PassCount)
	assert.InDelta(t, 4.0/3.0, analytics.AverageScore, 0.001)
	assert.InDelta(t, 60.0, analytics.AverageTimeSec, 0.001)

	require.Len(t, analytics.Questions, 2)

	choiceStats := analytics.Questions[0]
	assert.Equal(t, 3, choiceStats.Answered)
	assert.Equal(t, 2, choiceStats.OptionCounts["A"])
	assert.Equal(t, 1, choiceStats.OptionCounts["B"])

	ratingStats := analytics.Questions[1]
	assert.Equal(t, 3, ratingStats.Answered)
	assert.Equal(t, 1, ratingStats.RatingCounts[5])
	assert.Equal(t, 1, ratingStats.RatingCounts[4])
	assert.Equal(t, 1, ratingStats.RatingCounts[3])
	assert.InDelta(t, 4.0, ratingStats.RatingAverage, 0.001)
}

func TestAnalyticsService_RatingAverageIgnoresTextAnswers(t *testing.T) {
	// Arrange: на вопрос-оценку пришел один текстовый ответ
	kv := storage.NewMemoryKV()
	forms := kvstore.NewFormRepo(kv)
	questions := kvstore.NewQuestionRepo(kv)
	responses := kvstore.NewResponseRepo(kv)
	service := NewAnalyticsService(forms, questions, responses)

	now := time.Now()
	form := &entity.Form{
		ID:        uuid.New().String(),
		Title:     "Опрос",
		Mode:      entity.FormModeSurvey,
		Status:    entity.FormStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, forms.Upsert(form))

	rating := entity.Question{
		ID:     uuid.New().String(),
		FormID: form.ID,
		Text:   "Оценка",
		Type:   entity.QuestionTypeRating,
	}
	require.NoError(t, questions.Upsert(&rating))

	addAnswer := func(a entity.Answer) {
		r := &entity.Response{
			ID:          uuid.New().String(),
			FormID:      form.ID,
			UserID:      uuid.New().String(),
			Answers:     map[string]entity.Answer{rating.ID: a},
			SubmittedAt: now,
		}
		require.NoError(t, responses.Upsert(r))
	}
	addAnswer(entity.NumberAnswer(4))
	addAnswer(entity.NumberAnswer(2))
	addAnswer(entity.TextAnswer("отлично"))

	// Act
	analytics, err := service.FormAnalytics(form.ID)

	// Assert: текстовый ответ учтен в Answered, но не в среднем
	require.NoError(t, err)
	require.Len(t, analytics.Questions, 1)
	stats := analytics.Questions[0]
	assert.Equal(t, 3, stats.Answered)
	assert.InDelta(t, 3.0, stats.RatingAverage, 0.001, "среднее считается только по числовым ответам")
}

func TestAnalyticsService_EmptyForm(t *testing.T) {
	kv := storage.NewMemoryKV()
	forms := kvstore.NewFormRepo(kv)
	service := NewAnalyticsService(forms, kvstore.NewQuestionRepo(kv), kvstore.NewResponseRepo(kv))

	now := time.Now()
	form := &entity.Form{
		ID:        uuid.New().String(),
		Title:     "Пустой опрос",
		Mode:      entity.FormModeSurvey,
		Status:    entity.FormStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, forms.Upsert(form))

	analytics, err := service.FormAnalytics(form.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, analytics.ResponseCount)
	assert.Zero(t, analytics.AverageTimeSec)
	assert.Empty(t, analytics.Questions)
}
