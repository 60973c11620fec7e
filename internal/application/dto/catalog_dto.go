package dto

import "github.com/shopspring/decimal"

// CreateISOStandardRequest body para POST /api/standards.
type CreateISOStandardRequest struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	CertificationPrice   decimal.Decimal `json:"certification_price"`
	FollowUpPrice        decimal.Decimal `json:"follow_up_price"`
	RecertificationPrice decimal.Decimal `json:"recertification_price"`
}

// ISOStandardResponse norma ISO en respuestas.
type ISOStandardResponse struct {
	ID                   string          `json:"id"`
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	CertificationPrice   decimal.Decimal `json:"certification_price"`
	FollowUpPrice        decimal.Decimal `json:"follow_up_price"`
	RecertificationPrice decimal.Decimal `json:"recertification_price"`
}

// CreateAdvisorRequest body para POST /api/advisors.
type CreateAdvisorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// AdvisorResponse asesor en respuestas (nunca expone el hash).
type AdvisorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CreateBankAccountRequest body para POST /api/bank-accounts.
type CreateBankAccountRequest struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	CCI           string `json:"cci,omitempty"`
	Currency      string `json:"currency"` // soles | dolares
}

// BankAccountResponse cuenta bancaria en respuestas.
type BankAccountResponse struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	CCI           string `json:"cci,omitempty"`
	Currency      string `json:"currency"`
}

// CreateCertificationStepRequest body para POST /api/certification-steps.
type CreateCertificationStepRequest struct {
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CertificationStepResponse etapa del flujo en respuestas.
type CertificationStepResponse struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// AttachedFileResponse metadatos del adjunto activo (sin los bytes).
type AttachedFileResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	IsActive bool   `json:"is_active"`
}
