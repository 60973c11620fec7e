package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ISOStandard representa una norma ISO certificable con sus precios por
// defecto. El asesor puede sobreescribir los precios por cotización.
type ISOStandard struct {
	ID                   string
	Code                 string // ej. "ISO 9001"
	Name                 string
	Description          string
	CertificationPrice   decimal.Decimal
	FollowUpPrice        decimal.Decimal
	RecertificationPrice decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
