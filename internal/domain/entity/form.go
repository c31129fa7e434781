package entity

import (
	"strings"
	"time"
)

// Режимы формы
const (
	FormModeQuiz   = "quiz"
	FormModeSurvey = "survey"
)

// Статусы формы
const (
	FormStatusDraft     = "draft"
	FormStatusPublished = "published"
)

// DefaultPassingScore - проходной балл в процентах, если автор его не задал
const DefaultPassingScore = 60

// Form представляет определение квиза или опроса (метаданные и настройки,
// без самих вопросов)
type Form struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Mode               string    `json:"mode"`
	TimerSec           int       `json:"timer_sec"` // 0 = без таймера
	Shuffle            bool      `json:"shuffle"`
	RequireAllAnswered bool      `json:"require_all_answered"`
	ShowResults        bool      `json:"show_results"`
	AllowRetake        bool      `json:"allow_retake"`
	PassingScore       *int      `json:"passing_score,omitempty"` // nil = DefaultPassingScore
	CertificateEnabled bool      `json:"certificate_enabled"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsQuiz проверяет, включен ли режим квиза (подсчет баллов, сертификаты)
func (f *Form) IsQuiz() bool {
	return f.Mode == FormModeQuiz
}

// IsPublished проверяет, опубликована ли форма
func (f *Form) IsPublished() bool {
	return f.Status == FormStatusPublished
}

// PassingScoreOrDefault возвращает проходной балл формы
// или DefaultPassingScore, если он не задан
func (f *Form) PassingScoreOrDefault() int {
	if f.PassingScore == nil {
		return DefaultPassingScore
	}
	return *f.PassingScore
}

// Validate проверяет базовые инварианты формы
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return newValidationError("form title is required")
	}
	if f.Mode != FormModeQuiz && f.Mode != FormModeSurvey {
		return newValidationError("form mode must be quiz or survey")
	}
	if f.Status != FormStatusDraft && f.Status != FormStatusPublished {
		return newValidationError("form status must be draft or published")
	}
	if f.TimerSec < 0 {
		return newValidationError("form timer must not be negative")
	}
	if f.PassingScore != nil && (*f.PassingScore < 0 || *f.PassingScore > 100) {
		return newValidationError("passing score must be between 0 and 100")
	}
	// Опрос никогда не несет скоринговой семантики
	if f.Mode == FormModeSurvey && (f.PassingScore != nil || f.CertificateEnabled) {
		return newValidationError("survey forms cannot carry scoring settings")
	}
	return nil
}
