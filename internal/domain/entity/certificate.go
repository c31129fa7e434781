package entity

import "time"

// Certificate представляет выданный сертификат о прохождении квиза
type Certificate struct {
	ID             string    `json:"id"`
	FormID         string    `json:"form_id"`
	ResponseID     string    `json:"response_id"`
	RespondentName string    `json:"respondent_name"`
	FormTitle      string    `json:"form_title"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"max_score"`
	IssuedAt       time.Time `json:"issued_at"`
}
