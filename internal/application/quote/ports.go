package quote

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// QuoteTxRunner ejecuta una función dentro de una transacción con el
// repositorio de cotizaciones atado a la tx. La asignación del código y la
// inserción ocurren dentro de la misma transacción; el constraint UNIQUE de
// quotations.code detecta colisiones concurrentes.
type QuoteTxRunner interface {
	RunQuotation(ctx context.Context, fn func(repo repository.QuotationRepository) error) error
}

// AttachmentTxRunner ejecuta una función dentro de una transacción con el
// repositorio de adjuntos atado a la tx. Desactivar el adjunto vigente e
// insertar el nuevo deben confirmar juntos: un INSERT fallido revierte la
// desactivación.
type AttachmentTxRunner interface {
	RunAttachment(ctx context.Context, fn func(repo repository.AttachedFileRepository) error) error
}

// Document es la vista completa de la cotización lista para renderizar:
// cabecera, líneas por servicio, asesor, flujo de certificación y cuentas
// bancarias. El render no consulta estado ambiental; todo llega inyectado.
type Document struct {
	Quotation    *entity.Quotation
	Items        []DocumentItem
	Advisor      *entity.Advisor
	Steps        []*entity.CertificationStep
	BankAccounts []*entity.BankAccount
}

// DocumentItem es una línea visual del resumen de precios: una norma y uno
// de sus servicios cotizados.
type DocumentItem struct {
	StandardCode string
	StandardName string
	Service      string // Certificación | Seguimiento 1 y 2 | Recertificación
	Amount       decimal.Decimal
}

// DocumentRenderer serializa la vista a bytes PDF (A4 vertical, márgenes
// 10mm). Debe respetar la cancelación del contexto: un deadline vencido se
// reporta como domain.ErrRenderTimeout.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// DocumentMerger concatena página a página dos PDF ya válidos: primero todas
// las páginas de base, luego todas las del adjunto. No es conmutativo.
type DocumentMerger interface {
	Merge(base, attachment []byte) ([]byte, error)
}

// DocumentValidator verifica que un buffer sea un PDF estructuralmente
// válido (domain.ErrMalformedDocument en caso contrario).
type DocumentValidator interface {
	Validate(data []byte) error
}
