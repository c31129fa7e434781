package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
)

// FormExport - табличное представление прохождений формы для выгрузки
// в CSV или XLSX. Порядок колонок фиксирован: Name, Email, Roll/ID,
// Submitted At, Time Taken (seconds), затем для квизов Score, Max Score,
// Percentage, затем по колонке "Q: <текст вопроса>" в порядке показа.
type FormExport struct {
	Filename string
	Headers  []string
	Rows     [][]string
}

// ExportService строит выгрузку прохождений формы
type ExportService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	userRepo     repository.UserRepository
}

// NewExportService создает сервис выгрузки
func NewExportService(
	formRepo repository.FormRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	userRepo repository.UserRepository,
) *ExportService {
	return &ExportService{
		formRepo:     formRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		userRepo:     userRepo,
	}
}

// BuildExport собирает таблицу по всем прохождениям формы
func (s *ExportService) BuildExport(formID string) (*FormExport, error) {
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

	headers := []string{"Name", "Email", "Roll/ID", "Submitted At", "Time Taken (seconds)"}
	if form.IsQuiz() {
		headers = append(headers, "Score", "Max Score", "Percentage")
	}
	for i := range questions {
		headers = append(headers, "Q: "+questions[i].Text)
	}

	rows := make([][]string, 0, len(responses))
	for i := range responses {
		rows = append(rows, s.buildRow(form, questions, &responses[i]))
	}

	return &FormExport{
		Filename: fmt.Sprintf("form_%s_responses_%s", form.ID, time.Now().Format("2006-01-02")),
		Headers:  headers,
		Rows:     rows,
	}, nil
}

// buildRow строит одну строку выгрузки
func (s *ExportService) buildRow(form *entity.Form, questions []entity.Question, response *entity.Response) []string {
	name, email, roll := "", "", ""
	if user, err := s.userRepo.GetByID(response.UserID); err == nil {
		name, email, roll = user.Name, user.Email, user.RollNo
	}

	row := []string{
		name,
		email,
		roll,
		response.SubmittedAt.Format("2006-01-02 15:04:05"),
		strconv.Itoa(response.TimeTakenSec),
	}

	if form.IsQuiz() {
		score, maxScore, pct := "", "", ""
		if response.HasScore() {
			score = strconv.Itoa(*response.Score)
			maxScore = strconv.Itoa(*response.MaxScore)
			pct = strconv.FormatFloat(response.Percentage(), 'f', 1, 64)
		}
		row = append(row, score, maxScore, pct)
	}

	for i := range questions {
		row = append(row, response.Answers[questions[i].ID].String())
	}
	return row
}
