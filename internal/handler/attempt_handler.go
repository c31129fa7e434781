package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/handler/dto"
	"github.com/yourusername/formbuilder-api/internal/service"
)

// AttemptHandler обрабатывает публичные запросы прохождения формы.
// Эти маршруты не требуют аутентификации.
type AttemptHandler struct {
	attemptService *service.AttemptService
}

// NewAttemptHandler создает новый обработчик прохождений
func NewAttemptHandler(attemptService *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// GetPublicForm возвращает опубликованную форму для участника.
// Эталонные ответы и баллы из ответа исключены.
// GET /api/public/forms/:id
func (h *AttemptHandler) GetPublicForm(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	form, questions, err := h.attemptService.GetPublicForm(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPublicFormResponse(form, questions))
}

// SubmitRequest представляет отправку завершенной попытки
type SubmitRequest struct {
	Name         string                   `json:"name" binding:"required,min=1,max=200"`
	Email        string                   `json:"email" binding:"required,email"`
	RollNo       string                   `json:"roll_no" binding:"omitempty,max=100"`
	Answers      map[string]entity.Answer `json:"answers"`
	TimeTakenSec int                      `json:"time_taken_sec" binding:"omitempty,min=0"`
}

// Submit принимает завершенную попытку прохождения
// POST /api/public/forms/:id/submit
func (h *AttemptHandler) Submit(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Answers == nil {
		req.Answers = make(map[string]entity.Answer)
	}

	respondent := service.RespondentInfo{
		Name:   req.Name,
		Email:  req.Email,
		RollNo: req.RollNo,
	}

	result, err := h.attemptService.Submit(formID, respondent, req.Answers, req.TimeTakenSec)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	body := gin.H{
		"response_id":  result.Response.ID,
		"submitted_at": result.Response.SubmittedAt,
	}
	// Результаты показываются участнику только если это разрешено формой
	if result.Summary != nil {
		body["summary"] = result.Summary
		body["percentage"] = result.Summary.Percentage()
		if result.Response.Passed != nil {
			body["passed"] = *result.Response.Passed
		}
		body["certificate_generated"] = result.Response.CertificateGenerated
	}

	c.JSON(http.StatusCreated, body)
}
