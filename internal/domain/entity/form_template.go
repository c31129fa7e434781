package entity

import "time"

// FormTemplate - заготовка формы с вопросами. Инстанцирование шаблона
// создает черновик формы со свежими идентификаторами.
type FormTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Form        Form       `json:"form"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
}
