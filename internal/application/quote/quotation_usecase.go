package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/moneytext"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/pricing"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/quotecode"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// maxCodeAttempts acota el reintento cuando dos creaciones concurrentes
// calculan el mismo código y el constraint UNIQUE rechaza la segunda.
const maxCodeAttempts = 3

// QuotationUseCase casos de uso de cotizaciones: creación con asignación de
// código, consulta, listado, borrado y transiciones de estado.
type QuotationUseCase struct {
	txRunner      QuoteTxRunner
	quotationRepo repository.QuotationRepository
	advisorRepo   repository.AdvisorRepository
	isoRepo       repository.ISOStandardRepository
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	txRunner QuoteTxRunner,
	quotationRepo repository.QuotationRepository,
	advisorRepo repository.AdvisorRepository,
	isoRepo repository.ISOStandardRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		txRunner:      txRunner,
		quotationRepo: quotationRepo,
		advisorRepo:   advisorRepo,
		isoRepo:       isoRepo,
	}
}

// Create valida la entrada, calcula totales según la política, asigna el
// siguiente código del ámbito año-mes y persiste cabecera y líneas en una
// transacción. Ante colisión de código (creación concurrente) reintenta con
// el conjunto de códigos actualizado.
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := validateClientData(in); err != nil {
		return nil, err
	}

	advisor, err := uc.advisorRepo.GetByID(in.AdvisorID)
	if err != nil {
		return nil, err
	}
	if advisor == nil {
		return nil, domain.ErrAdvisorNotFound
	}

	// Selecciones: podar vacías antes de validar y persistir
	selections := pricing.Prune(toSelections(in.Items))
	if len(selections) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, sel := range selections {
		std, err := uc.isoRepo.GetByID(sel.ISOID)
		if err != nil {
			return nil, err
		}
		if std == nil {
			return nil, domain.ErrNotFound
		}
	}

	policy, err := policyFromRequest(in)
	if err != nil {
		return nil, err
	}
	totals := pricing.ComputeTotals(selections, policy)

	now := time.Now()
	q := buildQuotation(in, totals, now)

	var isos []*entity.QuotationISO
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		isos = nil
		err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
			codes, err := repo.ListCodesByPrefix(quotecode.ScopePrefix(now.Year(), now.Month()))
			if err != nil {
				return err
			}
			q.Code = quotecode.NextCode(now.Year(), now.Month(), codes)
			if err := repo.Create(q); err != nil {
				return err
			}
			for _, sel := range selections {
				iso := &entity.QuotationISO{
					ID:                   uuid.New().String(),
					QuotationID:          q.ID,
					ISOID:                sel.ISOID,
					Certification:        sel.Certification,
					CertificationPrice:   sel.CertificationPrice,
					FollowUp:             sel.FollowUp,
					FollowUpPrice:        sel.FollowUpPrice,
					Recertification:      sel.Recertification,
					RecertificationPrice: sel.RecertificationPrice,
				}
				if err := repo.CreateISO(iso); err != nil {
					return err
				}
				isos = append(isos, iso)
			}
			return nil
		})
		if err == nil {
			return toQuotationResponse(q, isos), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Código tomado por otra transacción: recalcular con el estado nuevo
	}
	return nil, fmt.Errorf("asignar código de cotización: %w", err)
}

// Get obtiene una cotización por ID con sus líneas.
func (uc *QuotationUseCase) Get(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	isos, err := uc.quotationRepo.GetISOsByQuotationID(id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, isos), nil
}

// List lista cotizaciones (historial), más recientes primero.
func (uc *QuotationUseCase) List(ctx context.Context, limit, offset int) ([]*dto.QuotationResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.quotationRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuotationResponse(q, nil))
	}
	return out, nil
}

// UpdateStatus aplica una transición del ciclo de vida. Las transiciones
// inválidas (estado desconocido o retroceso desde un estado terminal)
// retornan ErrInvalidInput / ErrConflict.
func (uc *QuotationUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.QuotationResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(q.Status, status) {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	if err := uc.quotationRepo.UpdateStatus(id, status, now); err != nil {
		return nil, err
	}
	q.Status = status
	q.UpdatedAt = now
	return toQuotationResponse(q, nil), nil
}

// Delete elimina una cotización. El hueco que deja su código en la secuencia
// del ámbito no se rellena: el asignador siempre avanza desde el máximo.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	return uc.quotationRepo.Delete(id)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func validateClientData(in dto.CreateQuotationRequest) error {
	if !isDigits(in.RUC) || len(in.RUC) != 11 {
		return domain.ErrInvalidInput
	}
	if in.RazonSocial == "" || in.Representante == "" {
		return domain.ErrInvalidInput
	}
	if !isDigits(in.Celular) || len(in.Celular) != 9 {
		return domain.ErrInvalidInput
	}
	if in.AdvisorID == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toSelections(items []dto.QuotationItemRequest) []pricing.Selection {
	out := make([]pricing.Selection, 0, len(items))
	for _, it := range items {
		out = append(out, pricing.Selection{
			ISOID:                it.ISOID,
			Certification:        it.Certification,
			CertificationPrice:   it.CertificationPrice.Decimal,
			FollowUp:             it.FollowUp,
			FollowUpPrice:        it.FollowUpPrice.Decimal,
			Recertification:      it.Recertification,
			RecertificationPrice: it.RecertificationPrice.Decimal,
		})
	}
	return out
}

// policyFromRequest resuelve la política de precios del request.
// percent_discount es la política por defecto; include_tax solo aplica a
// fixed_discount y por defecto es true.
func policyFromRequest(in dto.CreateQuotationRequest) (pricing.Policy, error) {
	switch in.Policy {
	case "", entity.PolicyPercentDiscount:
		return pricing.PercentDiscount{Percent: in.DiscountPercent.Decimal}, nil
	case entity.PolicyFixedDiscount:
		includeTax := true
		if in.IncludeTax != nil {
			includeTax = *in.IncludeTax
		}
		var impl pricing.Implementation
		if in.Implementation != nil {
			if in.Implementation.Quantity < 1 || in.Implementation.UnitPrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			impl = pricing.Implementation{
				Enabled:   true,
				UnitPrice: in.Implementation.UnitPrice.Decimal,
				Quantity:  in.Implementation.Quantity,
			}
		}
		return pricing.FixedDiscount{
			IncludeTax:     includeTax,
			Amount:         in.DiscountAmount.Decimal,
			Implementation: impl,
		}, nil
	}
	return nil, domain.ErrInvalidInput
}

func buildQuotation(in dto.CreateQuotationRequest, totals pricing.Totals, now time.Time) *entity.Quotation {
	policy := in.Policy
	if policy == "" {
		policy = entity.PolicyPercentDiscount
	}
	includeTax := true
	if policy == entity.PolicyFixedDiscount && in.IncludeTax != nil {
		includeTax = *in.IncludeTax
	}
	q := &entity.Quotation{
		ID:             uuid.New().String(),
		Date:           now,
		RUC:            in.RUC,
		RazonSocial:    in.RazonSocial,
		Representante:  in.Representante,
		Celular:        in.Celular,
		Correo:         in.Correo,
		AdvisorID:      in.AdvisorID,
		Policy:         policy,
		Subtotal:       totals.Subtotal,
		IGV:            totals.IGV,
		DiscountAmount: totals.Discount,
		IncludeTax:     includeTax,
		ImplTotal:      totals.Implementation,
		Total:          totals.Total,
		Status:         entity.StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Implementation != nil && policy == entity.PolicyFixedDiscount {
		q.ImplEnabled = true
		q.ImplUnitPrice = in.Implementation.UnitPrice.Decimal
		q.ImplQuantity = in.Implementation.Quantity
	}
	if policy == entity.PolicyPercentDiscount {
		q.DiscountPercent = in.DiscountPercent.Decimal
	} else {
		q.DiscountPercent = decimal.Zero
	}
	return q
}

func toQuotationResponse(q *entity.Quotation, isos []*entity.QuotationISO) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:              q.ID,
		Code:            q.Code,
		Date:            q.Date.Format("2006-01-02"),
		RUC:             q.RUC,
		RazonSocial:     q.RazonSocial,
		Representante:   q.Representante,
		Celular:         q.Celular,
		Correo:          q.Correo,
		AdvisorID:       q.AdvisorID,
		Policy:          q.Policy,
		Subtotal:        q.Subtotal,
		IGV:             q.IGV,
		DiscountPercent: q.DiscountPercent,
		DiscountAmount:  q.DiscountAmount,
		IncludeTax:      q.IncludeTax,
		ImplTotal:       q.ImplTotal,
		Total:           q.Total,
		FormattedTotal:  moneytext.FormatPEN(q.Total),
		TotalInWords:    moneytext.AmountToWords(q.Total),
		Status:          q.Status,
		Items:           make([]dto.QuotationItemResponse, 0, len(isos)),
	}
	for _, iso := range isos {
		resp.Items = append(resp.Items, dto.QuotationItemResponse{
			ID:                   iso.ID,
			ISOID:                iso.ISOID,
			Certification:        iso.Certification,
			CertificationPrice:   iso.CertificationPrice,
			FollowUp:             iso.FollowUp,
			FollowUpPrice:        iso.FollowUpPrice,
			Recertification:      iso.Recertification,
			RecertificationPrice: iso.RecertificationPrice,
		})
	}
	return resp
}
