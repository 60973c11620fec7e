package repository

import "github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"

// CertificationStepRepository define el puerto de persistencia para las
// etapas del flujo de certificación (ordenadas por posición).
type CertificationStepRepository interface {
	Create(step *entity.CertificationStep) error
	List() ([]*entity.CertificationStep, error)
}
