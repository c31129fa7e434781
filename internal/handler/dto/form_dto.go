package dto

import (
	"time"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// FormResponse представляет форму в формате для ответа клиенту
type FormResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Mode               string    `json:"mode"`
	TimerSec           int       `json:"timer_sec"`
	Shuffle            bool      `json:"shuffle"`
	RequireAllAnswered bool      `json:"require_all_answered"`
	ShowResults        bool      `json:"show_results"`
	AllowRetake        bool      `json:"allow_retake"`
	PassingScore       *int      `json:"passing_score,omitempty"`
	CertificateEnabled bool      `json:"certificate_enabled"`
	Status             string    `json:"status"`
	QuestionCount      int       `json:"question_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// QuestionResponse представляет вопрос в формате для админ-панели.
// Эталонный ответ включается, участникам этот DTO не отдается.
type QuestionResponse struct {
	ID            string         `json:"id"`
	FormID        string         `json:"form_id"`
	Text          string         `json:"text"`
	Type          string         `json:"type"`
	Options       []string       `json:"options,omitempty"`
	CorrectAnswer *entity.Answer `json:"correct_answer,omitempty"`
	Points        int            `json:"points"`
	Order         int            `json:"order"`
	Required      bool           `json:"required"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// PublicQuestionResponse - вопрос в формате для участника.
// Эталонный ответ и баллы скрыты.
type PublicQuestionResponse struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// PublicFormResponse - опубликованная форма с вопросами в порядке показа
type PublicFormResponse struct {
	ID                 string                   `json:"id"`
	Title              string                   `json:"title"`
	Description        string                   `json:"description,omitempty"`
	Mode               string                   `json:"mode"`
	TimerSec           int                      `json:"timer_sec"`
	RequireAllAnswered bool                     `json:"require_all_answered"`
	ShowResults        bool                     `json:"show_results"`
	Questions          []PublicQuestionResponse `json:"questions"`
}

// NewFormResponse создает DTO формы
func NewFormResponse(form *entity.Form, questionCount int) *FormResponse {
	if form == nil {
		return nil
	}
	return &FormResponse{
		ID:                 form.ID,
		Title:              form.Title,
		Description:        form.Description,
		Mode:               form.Mode,
		TimerSec:           form.TimerSec,
		Shuffle:            form.Shuffle,
		RequireAllAnswered: form.RequireAllAnswered,
		ShowResults:        form.ShowResults,
		AllowRetake:        form.AllowRetake,
		PassingScore:       form.PassingScore,
		CertificateEnabled: form.CertificateEnabled,
		Status:             form.Status,
		QuestionCount:      questionCount,
		CreatedAt:          form.CreatedAt,
		UpdatedAt:          form.UpdatedAt,
	}
}

// NewQuestionResponse создает DTO вопроса для админ-панели
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		FormID:        q.FormID,
		Text:          q.Text,
		Type:          q.Type,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Points:        q.Points,
		Order:         q.Order,
		Required:      q.Required,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

// NewListQuestionResponse создает слайс DTO вопросов
func NewListQuestionResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = NewQuestionResponse(&questions[i])
	}
	return list
}

// NewPublicFormResponse создает DTO формы для участника, скрывая
// эталонные ответы и баллы
func NewPublicFormResponse(form *entity.Form, questions []entity.Question) *PublicFormResponse {
	publicQuestions := make([]PublicQuestionResponse, len(questions))
	for i := range questions {
		q := &questions[i]
		publicQuestions[i] = PublicQuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.Type,
			Options:  q.Options,
			Required: q.Required,
		}
	}
	return &PublicFormResponse{
		ID:                 form.ID,
		Title:              form.Title,
		Description:        form.Description,
		Mode:               form.Mode,
		TimerSec:           form.TimerSec,
		RequireAllAnswered: form.RequireAllAnswered,
		ShowResults:        form.ShowResults,
		Questions:          publicQuestions,
	}
}
