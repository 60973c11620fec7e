package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// CatalogUseCase agrupa los catálogos de apoyo de la cotización: normas ISO,
// asesores (lectura), cuentas bancarias y etapas del flujo de certificación.
type CatalogUseCase struct {
	isoRepo     repository.ISOStandardRepository
	advisorRepo repository.AdvisorRepository
	bankRepo    repository.BankAccountRepository
	stepRepo    repository.CertificationStepRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	isoRepo repository.ISOStandardRepository,
	advisorRepo repository.AdvisorRepository,
	bankRepo repository.BankAccountRepository,
	stepRepo repository.CertificationStepRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		isoRepo:     isoRepo,
		advisorRepo: advisorRepo,
		bankRepo:    bankRepo,
		stepRepo:    stepRepo,
	}
}

// ── Normas ISO ────────────────────────────────────────────────────────────────

// CreateStandard registra una norma ISO con sus precios por defecto.
func (uc *CatalogUseCase) CreateStandard(in dto.CreateISOStandardRequest) (*dto.ISOStandardResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CertificationPrice.IsNegative() || in.FollowUpPrice.IsNegative() || in.RecertificationPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	std := &entity.ISOStandard{
		ID:                   uuid.New().String(),
		Code:                 in.Code,
		Name:                 in.Name,
		Description:          in.Description,
		CertificationPrice:   in.CertificationPrice,
		FollowUpPrice:        in.FollowUpPrice,
		RecertificationPrice: in.RecertificationPrice,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.isoRepo.Create(std); err != nil {
		return nil, err
	}
	return toStandardResponse(std), nil
}

// UpdateStandard actualiza nombre, descripción y precios por defecto.
func (uc *CatalogUseCase) UpdateStandard(id string, in dto.CreateISOStandardRequest) (*dto.ISOStandardResponse, error) {
	std, err := uc.isoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if std == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != "" {
		std.Code = in.Code
	}
	if in.Name != "" {
		std.Name = in.Name
	}
	std.Description = in.Description
	std.CertificationPrice = in.CertificationPrice
	std.FollowUpPrice = in.FollowUpPrice
	std.RecertificationPrice = in.RecertificationPrice
	std.UpdatedAt = time.Now()
	if err := uc.isoRepo.Update(std); err != nil {
		return nil, err
	}
	return toStandardResponse(std), nil
}

// ListStandards lista todas las normas disponibles.
func (uc *CatalogUseCase) ListStandards() ([]*dto.ISOStandardResponse, error) {
	list, err := uc.isoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ISOStandardResponse, 0, len(list))
	for _, std := range list {
		out = append(out, toStandardResponse(std))
	}
	return out, nil
}

// ── Asesores ──────────────────────────────────────────────────────────────────

// ListAdvisors lista los asesores registrados (sin credenciales).
func (uc *CatalogUseCase) ListAdvisors() ([]*dto.AdvisorResponse, error) {
	list, err := uc.advisorRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdvisorResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.AdvisorResponse{
			ID:    a.ID,
			Name:  a.Name,
			Email: a.Email,
			Phone: a.Phone,
		})
	}
	return out, nil
}

// ── Cuentas bancarias ─────────────────────────────────────────────────────────

// CreateBankAccount registra una cuenta de pago de la empresa.
func (uc *CatalogUseCase) CreateBankAccount(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.BankName == "" || in.AccountHolder == "" || in.AccountNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency != entity.CurrencySoles && in.Currency != entity.CurrencyDolares {
		return nil, domain.ErrInvalidInput
	}
	acc := &entity.BankAccount{
		ID:            uuid.New().String(),
		BankName:      in.BankName,
		AccountHolder: in.AccountHolder,
		AccountNumber: in.AccountNumber,
		CCI:           in.CCI,
		Currency:      in.Currency,
	}
	if err := uc.bankRepo.Create(acc); err != nil {
		return nil, err
	}
	return toBankAccountResponse(acc), nil
}

// ListBankAccounts lista las cuentas de pago.
func (uc *CatalogUseCase) ListBankAccounts() ([]*dto.BankAccountResponse, error) {
	list, err := uc.bankRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BankAccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, toBankAccountResponse(acc))
	}
	return out, nil
}

// DeleteBankAccount elimina una cuenta de pago.
func (uc *CatalogUseCase) DeleteBankAccount(id string) error {
	return uc.bankRepo.Delete(id)
}

// ── Etapas de certificación ───────────────────────────────────────────────────

// CreateStep registra una etapa del flujo de certificación.
func (uc *CatalogUseCase) CreateStep(in dto.CreateCertificationStepRequest) (*dto.CertificationStepResponse, error) {
	if in.Title == "" || in.Position < 1 {
		return nil, domain.ErrInvalidInput
	}
	step := &entity.CertificationStep{
		ID:          uuid.New().String(),
		Position:    in.Position,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := uc.stepRepo.Create(step); err != nil {
		return nil, err
	}
	return toStepResponse(step), nil
}

// ListSteps lista las etapas ordenadas por posición.
func (uc *CatalogUseCase) ListSteps() ([]*dto.CertificationStepResponse, error) {
	list, err := uc.stepRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CertificationStepResponse, 0, len(list))
	for _, step := range list {
		out = append(out, toStepResponse(step))
	}
	return out, nil
}

func toStandardResponse(std *entity.ISOStandard) *dto.ISOStandardResponse {
	return &dto.ISOStandardResponse{
		ID:                   std.ID,
		Code:                 std.Code,
		Name:                 std.Name,
		Description:          std.Description,
		CertificationPrice:   std.CertificationPrice,
		FollowUpPrice:        std.FollowUpPrice,
		RecertificationPrice: std.RecertificationPrice,
	}
}

func toBankAccountResponse(acc *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:            acc.ID,
		BankName:      acc.BankName,
		AccountHolder: acc.AccountHolder,
		AccountNumber: acc.AccountNumber,
		CCI:           acc.CCI,
		Currency:      acc.Currency,
	}
}

func toStepResponse(step *entity.CertificationStep) *dto.CertificationStepResponse {
	return &dto.CertificationStepResponse{
		ID:          step.ID,
		Position:    step.Position,
		Title:       step.Title,
		Description: step.Description,
	}
}
