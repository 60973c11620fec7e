package repository

import (
	"time"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para cotizaciones y
// sus líneas de selección ISO.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	CreateISO(sel *entity.QuotationISO) error
	GetByID(id string) (*entity.Quotation, error)
	GetISOsByQuotationID(quotationID string) ([]*entity.QuotationISO, error)
	List(limit, offset int) ([]*entity.Quotation, error)
	// ListCodesByPrefix devuelve los códigos ya emitidos que comparten el
	// prefijo año-mes (insumo del asignador de códigos).
	ListCodesByPrefix(prefix string) ([]string, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	Delete(id string) error
}
