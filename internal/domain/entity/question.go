package entity

import (
	"strings"
	"time"
)

// Типы вопросов
const (
	QuestionTypeSingleChoice = "single_choice"
	QuestionTypeTrueFalse    = "true_false"
	QuestionTypeDropdown     = "dropdown"
	QuestionTypeShortText    = "short_text"
	QuestionTypeParagraph    = "paragraph"
	QuestionTypeRating       = "rating"
	QuestionTypeFileUpload   = "file_upload"
)

// Границы шкалы оценки
const (
	RatingMin = 1
	RatingMax = 5
)

// Question представляет один вопрос формы
type Question struct {
	ID            string    `json:"id"`
	FormID        string    `json:"form_id"`
	Text          string    `json:"text"`
	Type          string    `json:"type"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer *Answer   `json:"correct_answer,omitempty"` // только для квизов
	Points        int       `json:"points"`
	Order         int       `json:"order"` // плотный, с нуля, в рамках формы
	Required      bool      `json:"required"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsChoiceType проверяет, является ли вопрос вопросом с выбором варианта
func (q *Question) IsChoiceType() bool {
	switch q.Type {
	case QuestionTypeSingleChoice, QuestionTypeTrueFalse, QuestionTypeDropdown:
		return true
	default:
		return false
	}
}

// IsTextType проверяет, является ли вопрос свободно-текстовым
func (q *Question) IsTextType() bool {
	return q.Type == QuestionTypeShortText || q.Type == QuestionTypeParagraph
}

// IsScorable сообщает, участвует ли вопрос в подсчете баллов.
// Для file_upload корректность не определена, такие вопросы
// не вносят вклад ни в score, ни в maxScore.
func (q *Question) IsScorable() bool {
	return q.Type != QuestionTypeFileUpload
}

// HasOption проверяет, входит ли значение в список вариантов
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Validate проверяет инварианты вопроса.
// quizMode включает проверки скоринговых полей.
func (q *Question) Validate(quizMode bool) error {
	if strings.TrimSpace(q.Text) == "" {
		return newValidationError("question text is required")
	}
	if q.Points < 0 {
		return newValidationError("question points must not be negative")
	}
	if q.Order < 0 {
		return newValidationError("question order must not be negative")
	}

	switch q.Type {
	case QuestionTypeSingleChoice, QuestionTypeDropdown:
		if len(q.Options) < 2 {
			return newValidationError("choice questions require at least 2 options")
		}
	case QuestionTypeTrueFalse:
		// true/false - это всегда ровно {True, False}
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			return newValidationError("true/false questions must have exactly the options True and False")
		}
	case QuestionTypeRating:
		if q.CorrectAnswer != nil {
			if q.CorrectAnswer.Kind != AnswerKindNumber {
				return newValidationError("rating correct answer must be numeric")
			}
			if q.CorrectAnswer.Number < RatingMin || q.CorrectAnswer.Number > RatingMax {
				return newValidationError("rating correct answer must be within the 1-5 scale")
			}
		}
	case QuestionTypeShortText, QuestionTypeParagraph, QuestionTypeFileUpload:
		// без дополнительных структурных требований
	default:
		return newValidationError("unknown question type: " + q.Type)
	}

	if quizMode && q.IsChoiceType() {
		if q.CorrectAnswer == nil {
			return newValidationError("quiz choice questions require a correct answer")
		}
		if q.CorrectAnswer.Kind != AnswerKindText || !q.HasOption(q.CorrectAnswer.Text) {
			return newValidationError("correct answer must be one of the question options")
		}
	}

	return nil
}
