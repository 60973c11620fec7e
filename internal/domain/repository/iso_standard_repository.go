package repository

import "github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"

// ISOStandardRepository define el puerto de persistencia para normas ISO.
type ISOStandardRepository interface {
	Create(std *entity.ISOStandard) error
	Update(std *entity.ISOStandard) error
	GetByID(id string) (*entity.ISOStandard, error)
	List() ([]*entity.ISOStandard, error)
}
