package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerKind определяет тип значения ответа
type AnswerKind string

const (
	AnswerKindText   AnswerKind = "text"
	AnswerKindNumber AnswerKind = "number"
)

// Answer - тегированное значение ответа на вопрос.
// Ответ всегда либо текст (выбор варианта, свободный текст),
// либо число (оценка по шкале 1-5). Тип фиксируется один раз
// на границе приема ответа, дальше сравнение строго типизировано:
// число 4 не равно тексту "4".
type Answer struct {
	Kind   AnswerKind
	Text   string
	Number float64
}

// TextAnswer создает текстовый ответ
func TextAnswer(s string) Answer {
	return Answer{Kind: AnswerKindText, Text: s}
}

// NumberAnswer создает числовой ответ
func NumberAnswer(n float64) Answer {
	return Answer{Kind: AnswerKindNumber, Number: n}
}

// IsZero сообщает, что ответ не был дан (нулевое значение Answer)
func (a Answer) IsZero() bool {
	return a.Kind == ""
}

// IsBlank сообщает, что ответ отсутствует или текст пуст после обрезки пробелов
func (a Answer) IsBlank() bool {
	if a.IsZero() {
		return true
	}
	if a.Kind == AnswerKindText {
		return strings.TrimSpace(a.Text) == ""
	}
	return false
}

// Equals выполняет строгое типочувствительное сравнение значений
func (a Answer) Equals(b Answer) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AnswerKindText:
		return a.Text == b.Text
	case AnswerKindNumber:
		return a.Number == b.Number
	default:
		return false
	}
}

// String возвращает отображаемое значение ответа (для экспорта и уведомлений)
func (a Answer) String() string {
	switch a.Kind {
	case AnswerKindText:
		return a.Text
	case AnswerKindNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON сериализует ответ в "голое" JSON-значение:
// текст -> строка, число -> число. Это сохраняет формат хранения
// исходной системы (answers[questionId] = string | number).
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerKindText:
		return json.Marshal(a.Text)
	case AnswerKindNumber:
		return json.Marshal(a.Number)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON разбирает строку или число, теггируя значение один раз
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = Answer{}
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a string or a number: %w", err)
	}
	*a = NumberAnswer(n)
	return nil
}
