package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/handler/dto"
	"github.com/yourusername/formbuilder-api/internal/service"
)

// FormHandler обрабатывает запросы авторинга: формы, вопросы,
// публикация, шаблоны и обмен формами между устройствами
type FormHandler struct {
	formService  *service.FormService
	shareService *service.ShareService
}

// NewFormHandler создает новый обработчик форм
func NewFormHandler(formService *service.FormService, shareService *service.ShareService) *FormHandler {
	return &FormHandler{
		formService:  formService,
		shareService: shareService,
	}
}

// FormRequest представляет запрос на создание или обновление формы
type FormRequest struct {
	Title              string `json:"title" binding:"required,min=1,max=200"`
	Description        string `json:"description" binding:"omitempty,max=2000"`
	Mode               string `json:"mode" binding:"required,oneof=quiz survey"`
	TimerSec           int    `json:"timer_sec" binding:"omitempty,min=0"`
	Shuffle            bool   `json:"shuffle"`
	RequireAllAnswered bool   `json:"require_all_answered"`
	ShowResults        bool   `json:"show_results"`
	AllowRetake        bool   `json:"allow_retake"`
	PassingScore       *int   `json:"passing_score"`
	CertificateEnabled bool   `json:"certificate_enabled"`
}

func (r *FormRequest) toInput() service.FormInput {
	return service.FormInput{
		Title:              r.Title,
		Description:        r.Description,
		Mode:               r.Mode,
		TimerSec:           r.TimerSec,
		Shuffle:            r.Shuffle,
		RequireAllAnswered: r.RequireAllAnswered,
		ShowResults:        r.ShowResults,
		AllowRetake:        r.AllowRetake,
		PassingScore:       r.PassingScore,
		CertificateEnabled: r.CertificateEnabled,
	}
}

// ListForms возвращает список всех форм
// GET /api/forms
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, questionCounts, err := h.formService.ListForms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	list := make([]*dto.FormResponse, len(forms))
	for i := range forms {
		list[i] = dto.NewFormResponse(&forms[i], questionCounts[forms[i].ID])
	}
	c.JSON(http.StatusOK, list)
}

// GetForm возвращает форму вместе с вопросами
// GET /api/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	form, questions, err := h.formService.GetForm(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form":      dto.NewFormResponse(form, len(questions)),
		"questions": dto.NewListQuestionResponse(questions),
	})
}

// CreateForm создает черновик формы
// POST /api/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := h.formService.CreateForm(actorEmail(c), req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewFormResponse(form, 0))
}

// UpdateForm обновляет настройки формы
// PUT /api/forms/:id
func (h *FormHandler) UpdateForm(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := h.formService.UpdateForm(actorEmail(c), formID, req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFormResponse(form, 0))
}

// DeleteForm удаляет форму вместе с вопросами и прохождениями
// DELETE /api/forms/:id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	if err := h.formService.DeleteForm(actorEmail(c), formID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted successfully"})
}

// PublishForm публикует форму
// POST /api/forms/:id/publish
func (h *FormHandler) PublishForm(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	form, err := h.formService.PublishForm(actorEmail(c), formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFormResponse(form, 0))
}

// UnpublishForm возвращает форму в черновик
// POST /api/forms/:id/unpublish
func (h *FormHandler) UnpublishForm(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	form, err := h.formService.UnpublishForm(actorEmail(c), formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFormResponse(form, 0))
}

// QuestionRequest представляет запрос на добавление или обновление вопроса
type QuestionRequest struct {
	Text          string         `json:"text" binding:"required,min=1,max=1000"`
	Type          string         `json:"type" binding:"required"`
	Options       []string       `json:"options"`
	CorrectAnswer *entity.Answer `json:"correct_answer"`
	Points        int            `json:"points" binding:"omitempty,min=0"`
	Required      bool           `json:"required"`
}

func (r *QuestionRequest) toEntity() entity.Question {
	return entity.Question{
		Text:          r.Text,
		Type:          r.Type,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Points:        r.Points,
		Required:      r.Required,
	}
}

// AddQuestion добавляет вопрос в конец формы
// POST /api/forms/:id/questions
func (h *FormHandler) AddQuestion(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.formService.AddQuestion(actorEmail(c), formID, req.toEntity())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

// UpdateQuestion обновляет содержимое вопроса
// PUT /api/questions/:id
func (h *FormHandler) UpdateQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(string)

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question := req.toEntity()
	question.ID = questionID

	updated, err := h.formService.UpdateQuestion(actorEmail(c), question)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionResponse(updated))
}

// DeleteQuestion удаляет вопрос
// DELETE /api/questions/:id
func (h *FormHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(string)

	if err := h.formService.DeleteQuestion(actorEmail(c), questionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}

// ReorderRequest представляет запрос на изменение порядка вопросов
type ReorderRequest struct {
	QuestionIDs []string `json:"question_ids" binding:"required,min=1"`
}

// ReorderQuestions задает новый порядок вопросов формы
// POST /api/forms/:id/questions/reorder
func (h *FormHandler) ReorderQuestions(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.formService.ReorderQuestions(actorEmail(c), formID, req.QuestionIDs); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Questions reordered successfully"})
}

// ExportShareBlob выдает переносимый blob формы для шаринга
// GET /api/forms/:id/share
func (h *FormHandler) ExportShareBlob(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	blob, err := h.shareService.ExportBlob(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blob": blob})
}

// ImportShareRequest представляет запрос на импорт формы из блоба
type ImportShareRequest struct {
	Blob string `json:"blob" binding:"required"`
}

// ImportShareBlob импортирует форму из переносимого блоба
// POST /api/forms/import
func (h *FormHandler) ImportShareBlob(c *gin.Context) {
	var req ImportShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, questions, err := h.shareService.ImportBlob(actorEmail(c), req.Blob)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"form":      dto.NewFormResponse(form, len(questions)),
		"questions": dto.NewListQuestionResponse(questions),
	})
}

// ListTemplates возвращает доступные шаблоны форм
// GET /api/templates
func (h *FormHandler) ListTemplates(c *gin.Context) {
	templates, err := h.formService.ListTemplates()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateFromTemplate инстанцирует шаблон в черновик формы
// POST /api/templates/:id/instantiate
func (h *FormHandler) CreateFromTemplate(c *gin.Context) {
	templateID := c.MustGet("templateID").(string)

	form, err := h.formService.CreateFromTemplate(actorEmail(c), templateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewFormResponse(form, 0))
}
