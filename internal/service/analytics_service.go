package service

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
)

// FormAnalytics - агрегаты по одной форме для дашборда
type FormAnalytics struct {
	FormID            string          `json:"form_id"`
	FormTitle         string          `json:"form_title"`
	ResponseCount     int             `json:"response_count"`
	AverageScore      float64         `json:"average_score,omitempty"`
	AveragePercentage float64         `json:"average_percentage,omitempty"`
	PassCount         int             `json:"pass_count,omitempty"`
	AverageTimeSec    float64         `json:"average_time_sec"`
	Questions         []QuestionStats `json:"questions"`
}

// QuestionStats - распределение ответов по одному вопросу
type QuestionStats struct {
	QuestionID    string         `json:"question_id"`
	Text          string         `json:"text"`
	Type          string         `json:"type"`
	Answered      int            `json:"answered"`
	OptionCounts  map[string]int `json:"option_counts,omitempty"`  // типы с выбором
	RatingCounts  map[int]int    `json:"rating_counts,omitempty"`  // оценки 1-5
	RatingAverage float64        `json:"rating_average,omitempty"` // оценки 1-5
}

// AnalyticsService считает дашборд-агрегаты одним проходом
// по прохождениям формы.
type AnalyticsService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
}

// NewAnalyticsService создает сервис аналитики
func NewAnalyticsService(
	formRepo repository.FormRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
) *AnalyticsService {
	return &AnalyticsService{
		formRepo:     formRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
	}
}

// FormAnalytics возвращает агрегаты по форме
func (s *AnalyticsService) FormAnalytics(formID string) (*FormAnalytics, error) {
	form, err := s.formRepo.GetByID(formID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.GetByFormID(formID)
	if err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.GetByFormID(formID)
	if err != nil {
		return nil, err
	}

	analytics := &FormAnalytics{
		FormID:    form.ID,
		FormTitle: form.Title,
		Questions: make([]QuestionStats, 0, len(questions)),
	}

	var totalScore, totalPct, totalTime float64
	scored := 0
	for i := range responses {
		r := &responses[i]
		analytics.ResponseCount++
		totalTime += float64(r.TimeTakenSec)
		if r.HasScore() {
			scored++
			totalScore += float64(*r.Score)
			totalPct += r.Percentage()
		}
		if r.Passed != nil && *r.Passed {
			analytics.PassCount++
		}
	}
	if analytics.ResponseCount > 0 {
		analytics.AverageTimeSec = totalTime / float64(analytics.ResponseCount)
	}
	if scored > 0 {
		analytics.AverageScore = totalScore / float64(scored)
		analytics.AveragePercentage = totalPct / float64(scored)
	}

	for i := range questions {
		analytics.Questions = append(analytics.Questions, buildQuestionStats(&questions[i], responses))
	}
	return analytics, nil
}

// buildQuestionStats собирает распределение ответов по вопросу
func buildQuestionStats(q *entity.Question, responses []entity.Response) QuestionStats {
	stats := QuestionStats{
		QuestionID: q.ID,
		Text:       q.Text,
		Type:       q.Type,
	}
	if q.IsChoiceType() {
		stats.OptionCounts = make(map[string]int, len(q.Options))
		for _, opt := range q.Options {
			stats.OptionCounts[opt] = 0
		}
	}
	if q.Type == entity.QuestionTypeRating {
		stats.RatingCounts = make(map[int]int)
	}

	var ratingSum float64
	rated := 0
	for i := range responses {
		answer, ok := responses[i].Answers[q.ID]
		if !ok || answer.IsBlank() {
			continue
		}
		stats.Answered++

		switch {
		case q.IsChoiceType() && answer.Kind == entity.AnswerKindText:
			stats.OptionCounts[answer.Text]++
		case q.Type == entity.QuestionTypeRating && answer.Kind == entity.AnswerKindNumber:
			stats.RatingCounts[int(answer.Number)]++
			ratingSum += answer.Number
			rated++
		}
	}

	// Среднее считается только по числовым ответам: текстовый ответ на
	// вопрос-оценку учитывается в Answered, но не искажает среднее
	if q.Type == entity.QuestionTypeRating && rated > 0 {
		stats.RatingAverage = ratingSum / float64(rated)
	}
	return stats
}
