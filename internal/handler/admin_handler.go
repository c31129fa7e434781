package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
)

// AdminHandler обрабатывает вспомогательные запросы админ-панели:
// уведомления, журнал активности, настройки оформления и сертификаты
type AdminHandler struct {
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityLogRepository
	settingsRepo     repository.BrandSettingsRepository
	certificateRepo  repository.CertificateRepository
}

// NewAdminHandler создает новый обработчик админ-панели
func NewAdminHandler(
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityLogRepository,
	settingsRepo repository.BrandSettingsRepository,
	certificateRepo repository.CertificateRepository,
) *AdminHandler {
	return &AdminHandler{
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		settingsRepo:     settingsRepo,
		certificateRepo:  certificateRepo,
	}
}

// ListNotifications возвращает уведомления, новые первыми
// GET /api/notifications
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationRepo.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// ListActivity возвращает журнал действий администраторов
// GET /api/activity?limit=N
func (h *AdminHandler) ListActivity(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.activityRepo.List(limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetBrandSettings возвращает настройки оформления
// GET /api/settings/brand
func (h *AdminHandler) GetBrandSettings(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// BrandSettingsRequest представляет запрос на обновление оформления
type BrandSettingsRequest struct {
	OrgName      string `json:"org_name" binding:"required,min=1,max=200"`
	LogoURL      string `json:"logo_url" binding:"omitempty,max=2000"`
	PrimaryColor string `json:"primary_color" binding:"omitempty,max=20"`
}

// UpdateBrandSettings сохраняет настройки оформления
// PUT /api/settings/brand
func (h *AdminHandler) UpdateBrandSettings(c *gin.Context) {
	var req BrandSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &entity.BrandSettings{
		OrgName:      req.OrgName,
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
		UpdatedAt:    time.Now(),
	}
	if settings.PrimaryColor == "" {
		settings.PrimaryColor = entity.DefaultBrandSettings().PrimaryColor
	}

	if err := h.settingsRepo.Save(settings); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ListCertificates возвращает сертификаты, выданные по форме
// GET /api/forms/:id/certificates
func (h *AdminHandler) ListCertificates(c *gin.Context) {
	formID := c.MustGet("formID").(string)

	certificates, err := h.certificateRepo.GetByFormID(formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificates)
}

// GetCertificate возвращает один сертификат. Маршрут публичный:
// по идентификатору сертификат может проверить кто угодно.
// GET /api/public/certificates/:id
func (h *AdminHandler) GetCertificate(c *gin.Context) {
	certificateID := c.MustGet("certificateID").(string)

	certificate, err := h.certificateRepo.GetByID(certificateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificate)
}
