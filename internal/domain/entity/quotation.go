package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una cotización.
const (
	StatusDraft    = "draft"    // Guardada, aún no enviada al cliente
	StatusSent     = "sent"     // Enviada al cliente
	StatusApproved = "approved" // Aceptada por el cliente
	StatusRejected = "rejected" // Rechazada por el cliente
)

// Políticas de precios soportadas. Ver internal/domain/pricing.
const (
	PolicyPercentDiscount = "percent_discount" // IGV siempre; descuento porcentual
	PolicyFixedDiscount   = "fixed_discount"   // IGV opcional; descuento en monto fijo
)

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransition valida una transición de estado. Una cotización borrador puede
// enviarse o resolverse directamente; una enviada solo puede resolverse.
// approved y rejected son terminales.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	switch from {
	case StatusDraft:
		return to == StatusSent || to == StatusApproved || to == StatusRejected
	case StatusSent:
		return to == StatusApproved || to == StatusRejected
	}
	return false
}

// Quotation representa la cabecera de una cotización de servicios de
// certificación ISO, con el snapshot de los datos del cliente al momento de
// emitirla. Las líneas (QuotationISO) se cargan por separado.
type Quotation struct {
	ID   string
	Code string // COT-{año}-{mes}-{secuencia}, único
	Date time.Time

	// Snapshot del cliente
	RUC           string
	RazonSocial   string
	Representante string
	Celular       string
	Correo        string
	AdvisorID     string

	// Política y componentes del total
	Policy          string
	Subtotal        decimal.Decimal
	IGV             decimal.Decimal
	DiscountPercent decimal.Decimal // solo política percent_discount
	DiscountAmount  decimal.Decimal // monto efectivo descontado
	IncludeTax      bool            // solo política fixed_discount
	ImplEnabled     bool
	ImplUnitPrice   decimal.Decimal
	ImplQuantity    int64
	ImplTotal       decimal.Decimal
	Total           decimal.Decimal

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuotationISO es una línea de selección: una norma ISO con hasta tres
// servicios cotizados (certificación, seguimiento, recertificación).
// Una selección con los tres flags apagados no se persiste.
type QuotationISO struct {
	ID                   string
	QuotationID          string
	ISOID                string
	Certification        bool
	CertificationPrice   decimal.Decimal
	FollowUp             bool
	FollowUpPrice        decimal.Decimal
	Recertification      bool
	RecertificationPrice decimal.Decimal
}
