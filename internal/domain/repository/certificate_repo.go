package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// CertificateRepository определяет методы для работы с сертификатами
type CertificateRepository interface {
	GetByID(id string) (*entity.Certificate, error)
	GetByFormID(formID string) ([]entity.Certificate, error)
	Upsert(certificate *entity.Certificate) error
}
