package entity

import "time"

// NotificationLimit - максимальный размер списка уведомлений.
// Старые записи вытесняются по принципу FIFO.
const NotificationLimit = 50

// Notification представляет запись о новом прохождении для админ-панели
type Notification struct {
	ID              string    `json:"id"`
	FormID          string    `json:"form_id"`
	FormTitle       string    `json:"form_title"`
	RespondentName  string    `json:"respondent_name"`
	RespondentEmail string    `json:"respondent_email"`
	Score           *int      `json:"score,omitempty"`
	MaxScore        *int      `json:"max_score,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
	CreatedAt       time.Time `json:"created_at"`
}
