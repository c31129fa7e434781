package kvstore

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// CertificateRepo реализует repository.CertificateRepository
type CertificateRepo struct {
	certificates *collection[entity.Certificate]
}

// NewCertificateRepo создает репозиторий сертификатов
func NewCertificateRepo(kv storage.KV) *CertificateRepo {
	return &CertificateRepo{
		certificates: newCollection(kv, keyCertificates, func(c *entity.Certificate) string { return c.ID }),
	}
}

// GetByID возвращает сертификат по id
func (r *CertificateRepo) GetByID(id string) (*entity.Certificate, error) {
	return r.certificates.find(id)
}

// GetByFormID возвращает сертификаты, выданные по форме
func (r *CertificateRepo) GetByFormID(formID string) ([]entity.Certificate, error) {
	return r.certificates.filter(func(c *entity.Certificate) bool { return c.FormID == formID })
}

// Upsert заменяет сертификат по id или добавляет новый
func (r *CertificateRepo) Upsert(certificate *entity.Certificate) error {
	return r.certificates.upsert(certificate)
}
