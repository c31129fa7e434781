package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
	"github.com/yourusername/formbuilder-api/internal/service/scoring"
)

// NotificationBroadcaster рассылает уведомления подключенным
// админ-панелям (WebSocket). Реализация может отсутствовать.
type NotificationBroadcaster interface {
	BroadcastNotification(notification *entity.Notification)
}

// ResponseService собирает запись прохождения из завершенной попытки,
// сохраняет ее и применяет побочные эффекты режима квиза: отметку
// о сертификате и уведомление для админ-панели.
type ResponseService struct {
	responseRepo     repository.ResponseRepository
	certificateRepo  repository.CertificateRepository
	notificationRepo repository.NotificationRepository
	broadcaster      NotificationBroadcaster
	emailNotifier    EmailNotifier
}

// NewResponseService создает сервис прохождений
func NewResponseService(
	responseRepo repository.ResponseRepository,
	certificateRepo repository.CertificateRepository,
	notificationRepo repository.NotificationRepository,
	broadcaster NotificationBroadcaster,
	emailNotifier EmailNotifier,
) *ResponseService {
	if emailNotifier == nil {
		emailNotifier = &NoopEmailNotifier{}
	}
	return &ResponseService{
		responseRepo:     responseRepo,
		certificateRepo:  certificateRepo,
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
		emailNotifier:    emailNotifier,
	}
}

// SaveResponse выполняет шаги сохранения прохождения. Порядок фиксирован:
//  1. построить запись Response со свежим id;
//  2. сохранить ее (upsert по id);
//  3. в режиме квиза при включенных сертификатах и достаточном проценте -
//     пометить прохождение пройденным и перезаписать, выдать сертификат;
//  4. добавить уведомление для админ-панели (список усекается до 50 FIFO).
//
// Шаги 3-4 выполняются по принципу best-effort: их сбой логируется, но не
// откатывает уже сохраненное прохождение.
func (s *ResponseService) SaveResponse(
	form *entity.Form,
	user *entity.User,
	answers map[string]entity.Answer,
	timeTakenSec int,
	summary *scoring.Summary,
) (*entity.Response, error) {
	// Шаг 1: построение записи
	response := &entity.Response{
		ID:           uuid.New().String(),
		FormID:       form.ID,
		UserID:       user.ID,
		Answers:      answers,
		TimeTakenSec: timeTakenSec,
		SubmittedAt:  time.Now(),
	}

	if form.IsQuiz() && summary != nil {
		score := summary.Score
		maxScore := summary.MaxScore
		correct := summary.CorrectAnswers
		total := summary.TotalQuestions
		response.Score = &score
		response.MaxScore = &maxScore
		response.CorrectAnswers = &correct
		response.TotalQuestions = &total
	}

	// Шаг 2: первичное сохранение
	if err := s.responseRepo.Upsert(response); err != nil {
		return nil, fmt.Errorf("failed to persist response: %w", err)
	}

	// Шаг 3: право на сертификат
	if form.IsQuiz() && form.CertificateEnabled && summary != nil &&
		summary.Percentage() >= float64(form.PassingScoreOrDefault()) {
		passed := true
		response.Passed = &passed
		response.CertificateGenerated = true

		if err := s.responseRepo.Upsert(response); err != nil {
			log.Printf("[ResponseService] Не удалось обновить отметку о сертификате для прохождения %s: %v", response.ID, err)
		} else {
			s.issueCertificate(form, user, response, summary)
		}
	}

	// Шаг 4: уведомление админ-панели
	s.appendNotification(form, user, response)

	return response, nil
}

// issueCertificate создает запись сертификата (best-effort)
func (s *ResponseService) issueCertificate(form *entity.Form, user *entity.User, response *entity.Response, summary *scoring.Summary) {
	certificate := &entity.Certificate{
		ID:             uuid.New().String(),
		FormID:         form.ID,
		ResponseID:     response.ID,
		RespondentName: user.Name,
		FormTitle:      form.Title,
		Score:          summary.Score,
		MaxScore:       summary.MaxScore,
		IssuedAt:       time.Now(),
	}
	if err := s.certificateRepo.Upsert(certificate); err != nil {
		log.Printf("[ResponseService] Не удалось сохранить сертификат для прохождения %s: %v", response.ID, err)
	}
}

// appendNotification добавляет запись о новом прохождении и рассылает
// ее подключенным админ-панелям (best-effort)
func (s *ResponseService) appendNotification(form *entity.Form, user *entity.User, response *entity.Response) {
	notification := &entity.Notification{
		ID:              uuid.New().String(),
		FormID:          form.ID,
		FormTitle:       form.Title,
		RespondentName:  user.Name,
		RespondentEmail: user.Email,
		Score:           response.Score,
		MaxScore:        response.MaxScore,
		SubmittedAt:     response.SubmittedAt,
		CreatedAt:       time.Now(),
	}

	if err := s.notificationRepo.Append(notification); err != nil {
		log.Printf("[ResponseService] Не удалось сохранить уведомление для формы %s: %v", form.ID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastNotification(notification)
	}

	if err := s.emailNotifier.NotifyNewResponse(context.Background(), notification); err != nil {
		log.Printf("[ResponseService] Не удалось отправить email-уведомление для формы %s: %v", form.ID, err)
	}
}
