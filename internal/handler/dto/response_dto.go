package dto

import (
	"time"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// ResponseDetail представляет прохождение вместе с данными респондента
type ResponseDetail struct {
	ID                   string                   `json:"id"`
	FormID               string                   `json:"form_id"`
	RespondentName       string                   `json:"respondent_name"`
	RespondentEmail      string                   `json:"respondent_email"`
	RespondentRollNo     string                   `json:"respondent_roll_no,omitempty"`
	Answers              map[string]entity.Answer `json:"answers"`
	Score                *int                     `json:"score,omitempty"`
	MaxScore             *int                     `json:"max_score,omitempty"`
	CorrectAnswers       *int                     `json:"correct_answers,omitempty"`
	TotalQuestions       *int                     `json:"total_questions,omitempty"`
	Passed               *bool                    `json:"passed,omitempty"`
	CertificateGenerated bool                     `json:"certificate_generated"`
	TimeTakenSec         int                      `json:"time_taken_sec"`
	SubmittedAt          time.Time                `json:"submitted_at"`
}

// NewResponseDetail создает DTO прохождения. user может быть nil
// (осиротевшая запись), тогда поля респондента остаются пустыми.
func NewResponseDetail(response *entity.Response, user *entity.User) *ResponseDetail {
	detail := &ResponseDetail{
		ID:                   response.ID,
		FormID:               response.FormID,
		Answers:              response.Answers,
		Score:                response.Score,
		MaxScore:             response.MaxScore,
		CorrectAnswers:       response.CorrectAnswers,
		TotalQuestions:       response.TotalQuestions,
		Passed:               response.Passed,
		CertificateGenerated: response.CertificateGenerated,
		TimeTakenSec:         response.TimeTakenSec,
		SubmittedAt:          response.SubmittedAt,
	}
	if user != nil {
		detail.RespondentName = user.Name
		detail.RespondentEmail = user.Email
		detail.RespondentRollNo = user.RollNo
	}
	return detail
}
