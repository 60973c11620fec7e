package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuotationRepo struct {
	quotations map[string]*entity.Quotation
	isos       map[string][]*entity.QuotationISO
	byCode     map[string]bool
	// failCreates hace fallar los primeros N Create con ErrDuplicate para
	// simular colisiones de código entre transacciones concurrentes.
	failCreates int
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{
		quotations: map[string]*entity.Quotation{},
		isos:       map[string][]*entity.QuotationISO{},
		byCode:     map[string]bool{},
	}
}

func (r *fakeQuotationRepo) Create(q *entity.Quotation) error {
	if r.failCreates > 0 {
		r.failCreates--
		return fmt.Errorf("code %s: %w", q.Code, domain.ErrDuplicate)
	}
	if r.byCode[q.Code] {
		return fmt.Errorf("code %s: %w", q.Code, domain.ErrDuplicate)
	}
	cp := *q
	r.quotations[q.ID] = &cp
	r.byCode[q.Code] = true
	return nil
}

func (r *fakeQuotationRepo) CreateISO(sel *entity.QuotationISO) error {
	cp := *sel
	r.isos[sel.QuotationID] = append(r.isos[sel.QuotationID], &cp)
	return nil
}

func (r *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuotationRepo) GetISOsByQuotationID(quotationID string) ([]*entity.QuotationISO, error) {
	return r.isos[quotationID], nil
}

func (r *fakeQuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	var list []*entity.Quotation
	for _, q := range r.quotations {
		list = append(list, q)
	}
	return list, nil
}

func (r *fakeQuotationRepo) ListCodesByPrefix(prefix string) ([]string, error) {
	var codes []string
	for code := range r.byCode {
		if len(code) >= len(prefix) && code[:len(prefix)] == prefix {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

func (r *fakeQuotationRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	q, ok := r.quotations[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	q.UpdatedAt = updatedAt
	return nil
}

func (r *fakeQuotationRepo) Delete(id string) error {
	q, ok := r.quotations[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byCode, q.Code)
	delete(r.quotations, id)
	delete(r.isos, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra el repo (sin tx real).
type fakeTxRunner struct {
	repo *fakeQuotationRepo
}

func (r *fakeTxRunner) RunQuotation(_ context.Context, fn func(repo repository.QuotationRepository) error) error {
	return fn(r.repo)
}

type fakeAdvisorRepo struct {
	advisors map[string]*entity.Advisor
}

func (r *fakeAdvisorRepo) Create(a *entity.Advisor) error { r.advisors[a.ID] = a; return nil }
func (r *fakeAdvisorRepo) GetByID(id string) (*entity.Advisor, error) {
	return r.advisors[id], nil
}
func (r *fakeAdvisorRepo) GetByEmail(email string) (*entity.Advisor, error) {
	for _, a := range r.advisors {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeAdvisorRepo) List() ([]*entity.Advisor, error) { return nil, nil }

type fakeISORepo struct {
	standards map[string]*entity.ISOStandard
}

func (r *fakeISORepo) Create(std *entity.ISOStandard) error { r.standards[std.ID] = std; return nil }
func (r *fakeISORepo) Update(std *entity.ISOStandard) error { r.standards[std.ID] = std; return nil }
func (r *fakeISORepo) GetByID(id string) (*entity.ISOStandard, error) {
	return r.standards[id], nil
}
func (r *fakeISORepo) List() ([]*entity.ISOStandard, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newTestUseCase() (*QuotationUseCase, *fakeQuotationRepo) {
	qRepo := newFakeQuotationRepo()
	advisorRepo := &fakeAdvisorRepo{advisors: map[string]*entity.Advisor{
		"adv-1": {ID: "adv-1", Name: "María Torres", Email: "maria@ccd.pe"},
	}}
	isoRepo := &fakeISORepo{standards: map[string]*entity.ISOStandard{
		"iso-9001": {ID: "iso-9001", Code: "ISO 9001", Name: "Gestión de la Calidad"},
	}}
	uc := NewQuotationUseCase(&fakeTxRunner{repo: qRepo}, qRepo, advisorRepo, isoRepo)
	return uc, qRepo
}

func validRequest() dto.CreateQuotationRequest {
	return dto.CreateQuotationRequest{
		RUC:           "20123456789",
		RazonSocial:   "Constructora Andina SAC",
		Representante: "Juan Pérez",
		Celular:       "987654321",
		AdvisorID:     "adv-1",
		Items: []dto.QuotationItemRequest{
			{
				ISOID:              "iso-9001",
				Certification:      true,
				CertificationPrice: dto.Amount{Decimal: decimal.NewFromInt(5000)},
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaCodigoSecuencial(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	now := time.Now()
	wantPrefix := fmt.Sprintf("COT-%d-%02d-", now.Year(), int(now.Month()))

	first, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, wantPrefix+"00001", first.Code)

	second, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, wantPrefix+"00002", second.Code)
}

func TestCreate_ReintentaTrasColisionDeCodigo(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.failCreates = 2 // dos colisiones simuladas antes de lograr insertar

	resp, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Code)
}

func TestCreate_AgotaReintentos(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.failCreates = maxCodeAttempts // todas las tentativas chocan

	_, err := uc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_CalculaTotalesPercentDiscount(t *testing.T) {
	uc, _ := newTestUseCase()
	in := validRequest()
	in.DiscountPercent = dto.Amount{Decimal: decimal.NewFromInt(10)}

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// 5000 + 18% = 5900; descuento 10% = 590; total 5310
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(5000)), "subtotal: %s", resp.Subtotal)
	assert.True(t, resp.IGV.Equal(decimal.NewFromInt(900)), "igv: %s", resp.IGV)
	assert.True(t, resp.DiscountAmount.Equal(decimal.NewFromInt(590)), "descuento: %s", resp.DiscountAmount)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(5310)), "total: %s", resp.Total)
}

func TestCreate_DescuentoNoParseableSeTrataComoCero(t *testing.T) {
	uc, _ := newTestUseCase()

	// Entrada típica de formulario: el porcentaje llega como string y mal
	// escrito. La coerción leniente lo convierte en 0, no en un error.
	body := `{
		"ruc": "20123456789",
		"razon_social": "Industrias Andinas SAC",
		"representante": "María Quispe",
		"celular": "987654321",
		"advisor_id": "adv-1",
		"discount_percent": "diez",
		"items": [{"iso_id": "iso-9001", "certification": true, "certification_price": "5000"}]
	}`
	var in dto.CreateQuotationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// Sin descuento: 5000 + 18% = 5900
	assert.True(t, resp.DiscountAmount.IsZero(), "descuento: %s", resp.DiscountAmount)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(5900)), "total: %s", resp.Total)
}

func TestCreate_PoliticaFixedDiscountSinIGV(t *testing.T) {
	uc, _ := newTestUseCase()
	in := validRequest()
	in.Policy = entity.PolicyFixedDiscount
	noTax := false
	in.IncludeTax = &noTax
	in.DiscountAmount = dto.Amount{Decimal: decimal.NewFromInt(500)}

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, resp.IGV.IsZero(), "igv: %s", resp.IGV)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(4500)), "total: %s", resp.Total)
	assert.False(t, resp.IncludeTax)
}

func TestCreate_ImplementacionNoGravada(t *testing.T) {
	uc, _ := newTestUseCase()
	in := validRequest()
	in.Policy = entity.PolicyFixedDiscount
	in.Implementation = &dto.ImplementationRequest{
		UnitPrice: dto.Amount{Decimal: decimal.NewFromInt(1500)},
		Quantity:  2,
	}

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// 5000 + 900 (IGV) + 3000 (impl, sin IGV) = 8900
	assert.True(t, resp.ImplTotal.Equal(decimal.NewFromInt(3000)), "impl: %s", resp.ImplTotal)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(8900)), "total: %s", resp.Total)
}

func TestCreate_ValidacionDeCliente(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.CreateQuotationRequest)
	}{
		{"RUC corto", func(in *dto.CreateQuotationRequest) { in.RUC = "123" }},
		{"RUC no numérico", func(in *dto.CreateQuotationRequest) { in.RUC = "2012345678X" }},
		{"celular corto", func(in *dto.CreateQuotationRequest) { in.Celular = "98765" }},
		{"sin razón social", func(in *dto.CreateQuotationRequest) { in.RazonSocial = "" }},
		{"sin representante", func(in *dto.CreateQuotationRequest) { in.Representante = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRequest()
			tc.mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_RechazaSeleccionVacia(t *testing.T) {
	uc, _ := newTestUseCase()
	in := validRequest()
	// Norma presente pero sin ningún servicio habilitado
	in.Items = []dto.QuotationItemRequest{{ISOID: "iso-9001"}}

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_AsesorInexistente(t *testing.T) {
	uc, _ := newTestUseCase()
	in := validRequest()
	in.AdvisorID = "adv-fantasma"

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAdvisorNotFound)
}

func TestCreate_RespuestaIncluyeTextos(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	// 5000 + 18% = 5900
	assert.Equal(t, "S/ 5,900.00", resp.FormattedTotal)
	assert.Equal(t, "Cinco Mil Novecientos Soles Peruanos", resp.TotalInWords)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_TransicionesValidas(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, created.Status)

	sent, err := uc.UpdateStatus(ctx, created.ID, entity.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, sent.Status)

	approved, err := uc.UpdateStatus(ctx, created.ID, entity.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, approved.Status)
}

func TestUpdateStatus_EstadoTerminalNoRetrocede(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, created.ID, entity.StatusRejected)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, created.ID, entity.StatusDraft)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = uc.UpdateStatus(ctx, created.ID, entity.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, created.ID, "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_NoRellenaHuecosIntermedios(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	second, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Borrar el primero deja un hueco; el asignador sigue desde el máximo
	require.NoError(t, uc.Delete(ctx, first.ID))

	third, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.Code, third.Code)
	assert.Greater(t, third.Code, second.Code)
}

func TestGet_NoEncontrada(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
