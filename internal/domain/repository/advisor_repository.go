package repository

import "github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"

// AdvisorRepository define el puerto de persistencia para asesores.
type AdvisorRepository interface {
	Create(a *entity.Advisor) error
	GetByID(id string) (*entity.Advisor, error)
	GetByEmail(email string) (*entity.Advisor, error)
	List() ([]*entity.Advisor, error)
}
