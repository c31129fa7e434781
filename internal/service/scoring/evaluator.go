// Package scoring реализует проверку ответов квиза: чистая функция
// над набором вопросов и картой отправленных ответов, без скрытого
// состояния. Вызывается только для форм в режиме quiz.
package scoring

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// Evaluate проверяет ответы против набора вопросов и возвращает
// повопросные вердикты и агрегированный результат.
//
// Правила корректности по типам:
//   - выбор варианта / true-false / dropdown / оценка: строгое
//     типочувствительное равенство с сохраненным правильным ответом;
//   - короткий текст / абзац: засчитывается любой непустой после
//     обрезки пробелов ответ (свободный текст требует ручной проверки,
//     это сознательная политика, а не автопроверка по эталону);
//   - загрузка файла: корректность не определена, вопрос не вносит
//     вклад ни в score, ни в maxScore.
func Evaluate(questions []entity.Question, answers map[string]entity.Answer) *Summary {
	summary := &Summary{
		Verdicts: make([]Verdict, 0, len(questions)),
	}

	for i := range questions {
		q := &questions[i]
		submitted := answers[q.ID]

		verdict := Verdict{
			QuestionID:    q.ID,
			Submitted:     submitted,
			CorrectAnswer: q.CorrectAnswer,
		}

		if !q.IsScorable() {
			// file_upload: вердикт фиксируется для разбора, но вопрос
			// не участвует в подсчете баллов
			summary.Verdicts = append(summary.Verdicts, verdict)
			continue
		}

		summary.TotalQuestions++
		summary.MaxScore += q.Points

		verdict.IsCorrect = isCorrect(q, submitted)
		if verdict.IsCorrect {
			verdict.PointsAwarded = q.Points
			summary.Score += q.Points
			summary.CorrectAnswers++
		}

		summary.Verdicts = append(summary.Verdicts, verdict)
	}

	return summary
}

// isCorrect применяет правило корректности для одного вопроса
func isCorrect(q *entity.Question, submitted entity.Answer) bool {
	if q.IsTextType() {
		return !submitted.IsBlank()
	}
	// Вопрос без эталона не может быть засчитан (и не должен ронять
	// процесс проверки)
	if q.CorrectAnswer == nil {
		return false
	}
	return submitted.Equals(*q.CorrectAnswer)
}
