package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `
	id, code, date, ruc, razon_social, representante, celular, correo, advisor_id,
	policy, subtotal, igv, discount_percent, discount_amount, include_tax,
	impl_enabled, impl_unit_price, impl_quantity, impl_total, total,
	status, created_at, updated_at`

// Create persiste la cabecera de una cotización. Una colisión en el índice
// único de code retorna domain.ErrDuplicate para que el caso de uso reintente
// con el siguiente número de la secuencia.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Code, q.Date, q.RUC, q.RazonSocial, q.Representante, q.Celular, nullIfEmpty(q.Correo), q.AdvisorID,
		q.Policy, q.Subtotal, q.IGV, q.DiscountPercent, q.DiscountAmount, q.IncludeTax,
		q.ImplEnabled, q.ImplUnitPrice, q.ImplQuantity, q.ImplTotal, q.Total,
		q.Status, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("code %s: %w", q.Code, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// CreateISO persiste una línea de selección de norma.
func (r *QuotationRepo) CreateISO(sel *entity.QuotationISO) error {
	query := `
		INSERT INTO quotation_isos (
			id, quotation_id, iso_id,
			certification, certification_price,
			follow_up, follow_up_price,
			recertification, recertification_price
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sel.ID, sel.QuotationID, sel.ISOID,
		sel.Certification, sel.CertificationPrice,
		sel.FollowUp, sel.FollowUpPrice,
		sel.Recertification, sel.RecertificationPrice,
	)
	if err != nil {
		return fmt.Errorf("insert quotation_iso: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`
	q, err := scanQuotation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

// GetISOsByQuotationID obtiene las líneas de selección de una cotización.
func (r *QuotationRepo) GetISOsByQuotationID(quotationID string) ([]*entity.QuotationISO, error) {
	query := `
		SELECT id, quotation_id, iso_id,
		       certification, certification_price,
		       follow_up, follow_up_price,
		       recertification, recertification_price
		FROM quotation_isos WHERE quotation_id = $1`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation_isos: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuotationISO
	for rows.Next() {
		var sel entity.QuotationISO
		if err := rows.Scan(
			&sel.ID, &sel.QuotationID, &sel.ISOID,
			&sel.Certification, &sel.CertificationPrice,
			&sel.FollowUp, &sel.FollowUpPrice,
			&sel.Recertification, &sel.RecertificationPrice,
		); err != nil {
			return nil, fmt.Errorf("scan quotation_iso: %w", err)
		}
		list = append(list, &sel)
	}
	return list, rows.Err()
}

// List lista cotizaciones con paginación, más recientes primero.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// ListCodesByPrefix devuelve los códigos emitidos del ámbito año-mes.
// Es insumo del asignador: el máximo sufijo numérico + 1 es el siguiente
// código, y los huecos intermedios no se rellenan.
func (r *QuotationRepo) ListCodesByPrefix(prefix string) ([]string, error) {
	query := `SELECT code FROM quotations WHERE code LIKE $1 || '%'`
	rows, err := r.q.Query(context.Background(), query, prefix)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// UpdateStatus actualiza el estado del ciclo de vida.
func (r *QuotationRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una cotización y sus líneas (ON DELETE CASCADE).
func (r *QuotationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar scanQuotation.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanQuotation(row pgxScanner) (*entity.Quotation, error) {
	var q entity.Quotation
	var correo *string
	err := row.Scan(
		&q.ID, &q.Code, &q.Date, &q.RUC, &q.RazonSocial, &q.Representante, &q.Celular, &correo, &q.AdvisorID,
		&q.Policy, &q.Subtotal, &q.IGV, &q.DiscountPercent, &q.DiscountAmount, &q.IncludeTax,
		&q.ImplEnabled, &q.ImplUnitPrice, &q.ImplQuantity, &q.ImplTotal, &q.Total,
		&q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if correo != nil {
		q.Correo = *correo
	}
	return &q, nil
}
