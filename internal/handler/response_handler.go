package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
	"github.com/yourusername/formbuilder-api/internal/handler/dto"
	"github.com/yourusername/formbuilder-api/internal/service"
)

// ResponseHandler обрабатывает админские запросы к прохождениям:
// просмотр, удаление, аналитика и выгрузка
type ResponseHandler struct {
	responseRepo     repository.ResponseRepository
	userRepo         repository.UserRepository
	activityRepo     repository.ActivityLogRepository
	analyticsService *service.AnalyticsService
	exportService    *service.ExportService
}

// NewResponseHandler создает новый обработчик прохождений
func NewResponseHandler(
	responseRepo repository.ResponseRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityLogRepository,
	analyticsService *service.AnalyticsService,
	exportService *service.ExportService,
) *ResponseHandler {
	return &ResponseHandler{
		responseRepo:     responseRepo,
		userRepo:         userRepo,
		activityRepo:     activityRepo,
		analyticsService: analyticsService,
		exportService:    exportService,
	}
}

// ListResponses возвращает прохождения формы, новые первыми
// GET /api/forms/:id/responses
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	responses, err := h.responseRepo.GetByFormID(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	list := make([]*dto.ResponseDetail, len(responses))
	for i := range responses {
		user, err := h.userRepo.GetByID(responses[i].UserID)
		if err != nil {
			user = nil // осиротевшая запись, поля респондента останутся пустыми
		}
		list[i] = dto.NewResponseDetail(&responses[i], user)
	}
	c.JSON(http.StatusOK, list)
}

// GetResponse возвращает одно прохождение
// GET /api/responses/:id
func (h *ResponseHandler) GetResponse(c *gin.Context) {
	responseID := c.MustGet("responseID").(string)

	response, err := h.responseRepo.GetByID(responseID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	user, err := h.userRepo.GetByID(response.UserID)
	if err != nil {
		user = nil
	}
	c.JSON(http.StatusOK, dto.NewResponseDetail(response, user))
}

// DeleteResponse удаляет прохождение
// DELETE /api/responses/:id
func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	responseID := c.MustGet("responseID").(string)

	response, err := h.responseRepo.GetByID(responseID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if err := h.responseRepo.Delete(responseID); err != nil {
		handleServiceError(c, err)
		return
	}

	entry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		Actor:     actorEmail(c),
		Action:    entity.ActivityResponseDeleted,
		SubjectID: response.FormID,
		Detail:    responseID,
		CreatedAt: time.Now(),
	}
	if err := h.activityRepo.Append(entry); err != nil {
		log.Printf("[ResponseHandler] Не удалось записать журнал удаления прохождения %s: %v", responseID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Response deleted successfully"})
}

// GetFormAnalytics возвращает агрегаты по форме
// GET /api/forms/:id/analytics
func (h *ResponseHandler) GetFormAnalytics(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	analytics, err := h.analyticsService.FormAnalytics(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// ExportResponses экспортирует прохождения формы в CSV или Excel
// GET /api/forms/:id/responses/export?format=csv|xlsx
func (h *ResponseHandler) ExportResponses(c *gin.Context) {
	formID := c.MustGet("formID").(string)
	format := c.DefaultQuery("format", "csv")

	export, err := h.exportService.BuildExport(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	switch format {
	case "csv":
		h.exportCSV(c, export)
	case "xlsx":
		h.exportXLSX(c, export)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
	}
}

// exportCSV пишет выгрузку в CSV с правильным экранированием спецсимволов
func (h *ResponseHandler) exportCSV(c *gin.Context, export *service.FormExport) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", export.Filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(export.Headers)
	for _, row := range export.Rows {
		sanitized := make([]string, len(row))
		for i, cell := range row {
			sanitized[i] = sanitizeForExcel(cell)
		}
		writer.Write(sanitized)
	}
}

// exportXLSX пишет выгрузку в Excel с использованием StreamWriter
func (h *ResponseHandler) exportXLSX(c *gin.Context, export *service.FormExport) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", export.Filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Responses"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ResponseHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := make([]interface{}, len(export.Headers))
	for i, header := range export.Headers {
		headers[i] = header
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ResponseHandler] Ошибка записи заголовков: %v", err)
	}

	for i, row := range export.Rows {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = sanitizeForExcel(value)
		}
		if err := sw.SetRow(cell, cells); err != nil {
			log.Printf("[ResponseHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ResponseHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ResponseHandler] Ошибка записи Excel в response: %v", err)
	}
}
