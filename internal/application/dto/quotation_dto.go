package dto

import "github.com/shopspring/decimal"

// QuotationItemRequest línea de selección de norma ISO.
// Los precios son overrides del precio por defecto de la norma; llegan de
// formularios, así que usan Amount (coerción leniente).
type QuotationItemRequest struct {
	ISOID                string `json:"iso_id"`
	Certification        bool   `json:"certification"`
	CertificationPrice   Amount `json:"certification_price"`
	FollowUp             bool   `json:"follow_up"`
	FollowUpPrice        Amount `json:"follow_up_price"`
	Recertification      bool   `json:"recertification"`
	RecertificationPrice Amount `json:"recertification_price"`
}

// ImplementationRequest servicio de implementación opcional (política
// fixed_discount): unit_price × quantity, no gravado con IGV.
type ImplementationRequest struct {
	UnitPrice Amount `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
}

// CreateQuotationRequest body para POST /api/quotations.
// Policy selecciona la política de precios: "percent_discount" (por defecto)
// o "fixed_discount". IncludeTax solo aplica a fixed_discount y por defecto
// es true.
type CreateQuotationRequest struct {
	RUC           string `json:"ruc"`
	RazonSocial   string `json:"razon_social"`
	Representante string `json:"representante"`
	Celular       string `json:"celular"`
	Correo        string `json:"correo,omitempty"`
	AdvisorID     string `json:"advisor_id"`

	Items []QuotationItemRequest `json:"items"`

	Policy          string                 `json:"policy,omitempty"`
	DiscountPercent Amount                 `json:"discount_percent,omitempty"`
	DiscountAmount  Amount                 `json:"discount_amount,omitempty"`
	IncludeTax      *bool                  `json:"include_tax,omitempty"`
	Implementation  *ImplementationRequest `json:"implementation,omitempty"`
}

// QuotationResponse cotización con totales calculados.
type QuotationResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Date          string `json:"date"`
	RUC           string `json:"ruc"`
	RazonSocial   string `json:"razon_social"`
	Representante string `json:"representante"`
	Celular       string `json:"celular"`
	Correo        string `json:"correo,omitempty"`
	AdvisorID     string `json:"advisor_id"`

	Policy          string          `json:"policy"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	IGV             decimal.Decimal `json:"igv"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	IncludeTax      bool            `json:"include_tax"`
	ImplTotal       decimal.Decimal `json:"implementation_total"`
	Total           decimal.Decimal `json:"total"`

	// Representaciones textuales para UI y documento
	FormattedTotal string `json:"formatted_total"`
	TotalInWords   string `json:"total_in_words"`

	Status string                  `json:"status"`
	Items  []QuotationItemResponse `json:"items"`
}

// QuotationItemResponse línea persistida de la cotización.
type QuotationItemResponse struct {
	ID                   string          `json:"id"`
	ISOID                string          `json:"iso_id"`
	Certification        bool            `json:"certification"`
	CertificationPrice   decimal.Decimal `json:"certification_price"`
	FollowUp             bool            `json:"follow_up"`
	FollowUpPrice        decimal.Decimal `json:"follow_up_price"`
	Recertification      bool            `json:"recertification"`
	RecertificationPrice decimal.Decimal `json:"recertification_price"`
}

// UpdateStatusRequest body para PATCH /api/quotations/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"` // draft|sent|approved|rejected
}
