package entity

import "time"

// User представляет респондента (участника прохождения формы).
// Идентичность фиксируется один раз на попытку; глобальной дедупликации
// нет, кроме проверки повторного прохождения по email.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RollNo    string    `json:"roll_no,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
