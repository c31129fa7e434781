package service

import (
	"fmt"
	"time"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
)

// SeedDefaultTemplates записывает встроенные шаблоны форм при первом
// запуске. Непустое хранилище шаблонов не трогается.
func SeedDefaultTemplates(templateRepo repository.TemplateRepository) error {
	existing, err := templateRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, template := range defaultTemplates() {
		if err := templateRepo.Upsert(&template); err != nil {
			return fmt.Errorf("failed to seed template %q: %w", template.Name, err)
		}
	}
	return nil
}

// defaultTemplates возвращает встроенные заготовки. Идентификаторы
// фиксированные, чтобы повторный посев не плодил дубликаты.
func defaultTemplates() []entity.FormTemplate {
	now := time.Now()
	return []entity.FormTemplate{
		{
			ID:          "template-basic-quiz",
			Name:        "Basic Quiz",
			Description: "Квиз с выбором варианта и проходным баллом",
			Form: entity.Form{
				Title:        "Untitled Quiz",
				Mode:         entity.FormModeQuiz,
				ShowResults:  true,
				PassingScore: nil, // действует проходной балл по умолчанию
			},
			Questions: []entity.Question{
				{
					Text:          "Sample question: pick the right option",
					Type:          entity.QuestionTypeSingleChoice,
					Options:       []string{"Option A", "Option B", "Option C"},
					CorrectAnswer: answerRef(entity.TextAnswer("Option A")),
					Points:        1,
					Required:      true,
				},
				{
					Text:          "Sample statement: true or false?",
					Type:          entity.QuestionTypeTrueFalse,
					Options:       []string{"True", "False"},
					CorrectAnswer: answerRef(entity.TextAnswer("True")),
					Points:        1,
					Required:      true,
				},
			},
			CreatedAt: now,
		},
		{
			ID:          "template-feedback-survey",
			Name:        "Feedback Survey",
			Description: "Опрос обратной связи с оценкой и свободным ответом",
			Form: entity.Form{
				Title: "Feedback Survey",
				Mode:  entity.FormModeSurvey,
			},
			Questions: []entity.Question{
				{
					Text:     "How would you rate your experience?",
					Type:     entity.QuestionTypeRating,
					Required: true,
				},
				{
					Text: "What could we improve?",
					Type: entity.QuestionTypeParagraph,
				},
			},
			CreatedAt: now,
		},
	}
}

func answerRef(a entity.Answer) *entity.Answer {
	return &a
}
