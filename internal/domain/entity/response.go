package entity

import "time"

// Response представляет одно завершенное прохождение формы.
// Скоринговые поля заполняются только в режиме квиза; для опросов
// они остаются nil и в JSON не сериализуются.
type Response struct {
	ID                   string            `json:"id"`
	FormID               string            `json:"form_id"`
	UserID               string            `json:"user_id"`
	Answers              map[string]Answer `json:"answers"`
	Score                *int              `json:"score,omitempty"`
	MaxScore             *int              `json:"max_score,omitempty"`
	CorrectAnswers       *int              `json:"correct_answers,omitempty"`
	TotalQuestions       *int              `json:"total_questions,omitempty"`
	Passed               *bool             `json:"passed,omitempty"`
	CertificateGenerated bool              `json:"certificate_generated"`
	TimeTakenSec         int               `json:"time_taken_sec"`
	SubmittedAt          time.Time         `json:"submitted_at"`
}

// HasScore сообщает, заполнены ли скоринговые поля (режим квиза)
func (r *Response) HasScore() bool {
	return r.Score != nil && r.MaxScore != nil
}

// Percentage возвращает процент набранных баллов.
// Для опросов и квизов с нулевым maxScore возвращает 0.
func (r *Response) Percentage() float64 {
	if !r.HasScore() || *r.MaxScore == 0 {
		return 0
	}
	return float64(*r.Score) / float64(*r.MaxScore) * 100
}
