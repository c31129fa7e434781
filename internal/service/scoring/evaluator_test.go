package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

func answerPtr(a entity.Answer) *entity.Answer { return &a }

func mcq(id, correct string, points int) entity.Question {
	return entity.Question{
		ID:            id,
		Type:          entity.QuestionTypeSingleChoice,
		Options:       []string{"A", "B", "C"},
		CorrectAnswer: answerPtr(entity.TextAnswer(correct)),
		Points:        points,
	}
}

func TestEvaluate_AllCorrect(t *testing.T) {
	// Arrange: квиз с двумя MCQ (2 и 3 балла)
	questions := []entity.Question{mcq("q1", "A", 2), mcq("q2", "B", 3)}
	answers := map[string]entity.Answer{
		"q1": entity.TextAnswer("A"),
		"q2": entity.TextAnswer("B"),
	}

	// Act
	summary := Evaluate(questions, answers)

	// Assert
	assert.Equal(t, 5, summary.Score)
	assert.Equal(t, 5, summary.MaxScore)
	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Equal(t, 2, summary.TotalQuestions)
	assert.InDelta(t, 100, summary.Percentage(), 0.001)
}

func TestEvaluate_PartiallyCorrect(t *testing.T) {
	questions := []entity.Question{mcq("q1", "A", 2), mcq("q2", "B", 3)}
	answers := map[string]entity.Answer{
		"q1": entity.TextAnswer("A"),
		"q2": entity.TextAnswer("C"),
	}

	summary := Evaluate(questions, answers)

	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 5, summary.MaxScore)
	assert.Equal(t, 1, summary.CorrectAnswers)

	require.Len(t, summary.Verdicts, 2)
	assert.True(t, summary.Verdicts[0].IsCorrect)
	assert.Equal(t, 2, summary.Verdicts[0].PointsAwarded)
	assert.False(t, summary.Verdicts[1].IsCorrect)
	assert.Equal(t, 0, summary.Verdicts[1].PointsAwarded)
	require.NotNil(t, summary.Verdicts[1].CorrectAnswer, "вердикт должен нести правильный ответ для экрана разбора")
	assert.Equal(t, "B", summary.Verdicts[1].CorrectAnswer.Text)
}

func TestEvaluate_RatingStrictTypes(t *testing.T) {
	// Arrange: оценка с числовым эталоном
	questions := []entity.Question{{
		ID:            "q1",
		Type:          entity.QuestionTypeRating,
		CorrectAnswer: answerPtr(entity.NumberAnswer(4)),
		Points:        1,
	}}

	// Act & Assert: число 4 засчитывается, текст "4" - нет
	ok := Evaluate(questions, map[string]entity.Answer{"q1": entity.NumberAnswer(4)})
	assert.Equal(t, 1, ok.Score, "числовая 4 должна совпасть с числовым эталоном")

	mismatch := Evaluate(questions, map[string]entity.Answer{"q1": entity.TextAnswer("4")})
	assert.Equal(t, 0, mismatch.Score, "текст \"4\" не должен совпасть с числом 4")
}

func TestEvaluate_FreeTextLeniency(t *testing.T) {
	// Свободный текст засчитывается за любой непустой ответ,
	// эталон не сравнивается
	questions := []entity.Question{{
		ID:            "q1",
		Type:          entity.QuestionTypeShortText,
		CorrectAnswer: answerPtr(entity.TextAnswer("expected")),
		Points:        2,
	}}

	nonEmpty := Evaluate(questions, map[string]entity.Answer{"q1": entity.TextAnswer("anything else")})
	assert.Equal(t, 2, nonEmpty.Score, "непустой текст должен быть засчитан независимо от эталона")

	blank := Evaluate(questions, map[string]entity.Answer{"q1": entity.TextAnswer("   ")})
	assert.Equal(t, 0, blank.Score, "текст из пробелов не засчитывается")

	missing := Evaluate(questions, map[string]entity.Answer{})
	assert.Equal(t, 0, missing.Score, "отсутствующий ответ не засчитывается")
}

func TestEvaluate_FileUploadExcludedFromScoring(t *testing.T) {
	// Arrange: file_upload без эталона среди обычных вопросов
	questions := []entity.Question{
		mcq("q1", "A", 2),
		{ID: "q2", Type: entity.QuestionTypeFileUpload, Points: 10},
	}
	answers := map[string]entity.Answer{
		"q1": entity.TextAnswer("A"),
		"q2": entity.TextAnswer("file://report.pdf"),
	}

	// Act: не должно паниковать на отсутствующем эталоне
	summary := Evaluate(questions, answers)

	// Assert: file_upload не влияет ни на score, ни на maxScore
	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 2, summary.MaxScore)
	assert.Equal(t, 1, summary.TotalQuestions)
	require.Len(t, summary.Verdicts, 2, "вердикт по file_upload сохраняется для разбора")
	assert.False(t, summary.Verdicts[1].IsCorrect)
}

func TestEvaluate_MissingCorrectAnswerDoesNotPanic(t *testing.T) {
	questions := []entity.Question{{
		ID:      "q1",
		Type:    entity.QuestionTypeDropdown,
		Options: []string{"A", "B"},
		Points:  3,
	}}

	summary := Evaluate(questions, map[string]entity.Answer{"q1": entity.TextAnswer("A")})

	assert.Equal(t, 0, summary.Score, "вопрос без эталона не может быть засчитан")
	assert.Equal(t, 3, summary.MaxScore)
}

func TestEvaluate_Idempotent(t *testing.T) {
	questions := []entity.Question{mcq("q1", "A", 2), mcq("q2", "B", 3)}
	answers := map[string]entity.Answer{"q1": entity.TextAnswer("A")}

	first := Evaluate(questions, answers)
	second := Evaluate(questions, answers)

	assert.Equal(t, first, second, "одинаковый вход должен давать одинаковый результат")
}

func TestEvaluate_ScoreWithinBounds(t *testing.T) {
	questions := []entity.Question{mcq("q1", "A", 2), mcq("q2", "B", 3), mcq("q3", "C", 5)}
	answersSets := []map[string]entity.Answer{
		{},
		{"q1": entity.TextAnswer("A")},
		{"q1": entity.TextAnswer("A"), "q2": entity.TextAnswer("B"), "q3": entity.TextAnswer("C")},
		{"q1": entity.TextAnswer("X"), "q2": entity.TextAnswer("Y"), "q3": entity.TextAnswer("Z")},
	}

	for _, answers := range answersSets {
		summary := Evaluate(questions, answers)
		assert.GreaterOrEqual(t, summary.Score, 0)
		assert.LessOrEqual(t, summary.Score, summary.MaxScore)
		assert.Equal(t, 10, summary.MaxScore, "maxScore - сумма баллов всех вопросов")
	}
}
