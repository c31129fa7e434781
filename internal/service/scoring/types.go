package scoring

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// Verdict - вердикт по одному вопросу: что было отправлено,
// засчитан ли ответ и какой ответ считается правильным (для экрана
// разбора результатов).
type Verdict struct {
	QuestionID    string         `json:"question_id"`
	Submitted     entity.Answer  `json:"submitted"`
	IsCorrect     bool           `json:"is_correct"`
	CorrectAnswer *entity.Answer `json:"correct_answer,omitempty"`
	PointsAwarded int            `json:"points_awarded"`
}

// Summary - агрегированный результат прохождения квиза
type Summary struct {
	Score          int       `json:"score"`
	MaxScore       int       `json:"max_score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	Verdicts       []Verdict `json:"verdicts"`
}

// Percentage возвращает процент набранных баллов (0 при maxScore=0)
func (s *Summary) Percentage() float64 {
	if s.MaxScore == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.MaxScore) * 100
}
