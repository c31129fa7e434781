package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/domain/repository"
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
	"github.com/yourusername/formbuilder-api/pkg/auth"
)

// AuthService отвечает за вход администраторов и выпуск JWT
type AuthService struct {
	adminRepo  repository.AdminUserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает сервис аутентификации
func NewAuthService(adminRepo repository.AdminUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login проверяет учетные данные и возвращает токен доступа.
// Несуществующий email и неверный пароль дают одинаковую ошибку.
func (s *AuthService) Login(email, password string) (string, *entity.AdminUser, error) {
	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return "", nil, err
	}
	if !admin.CheckPassword(password) {
		return "", nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, admin, nil
}

// EnsureDefaultAdmin создает администратора по умолчанию при пустой
// коллекции (первый запуск)
func (s *AuthService) EnsureDefaultAdmin(email, password, name string) error {
	count, err := s.adminRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		log.Printf("[AuthService] Администратор по умолчанию не настроен, вход будет невозможен")
		return nil
	}

	admin := &entity.AdminUser{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      entity.AdminRoleOwner,
		CreatedAt: time.Now(),
	}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	if err := s.adminRepo.Upsert(admin); err != nil {
		return fmt.Errorf("failed to persist default admin: %w", err)
	}
	log.Printf("[AuthService] Создан администратор по умолчанию %s", email)
	return nil
}
