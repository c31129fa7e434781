package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Роли администраторов
const (
	AdminRoleOwner  = "owner"
	AdminRoleEditor = "editor"
)

// AdminUser представляет администратора конструктора форм.
// PasswordHash сериализуется: хранилище пишет сущности как JSON.
// Наружу сущность не отдается, ответы API собирают поля без хеша.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// SetPassword хеширует и устанавливает пароль администратора
func (a *AdminUser) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword проверяет пароль против сохраненного хеша
func (a *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
