package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

var _ repository.ISOStandardRepository = (*ISOStandardRepo)(nil)

// ISOStandardRepo implementación de ISOStandardRepository (usable con pool o tx).
type ISOStandardRepo struct {
	q Querier
}

// NewISOStandardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewISOStandardRepository(q Querier) *ISOStandardRepo {
	return &ISOStandardRepo{q: q}
}

// Create persiste una norma ISO con sus precios por defecto.
func (r *ISOStandardRepo) Create(std *entity.ISOStandard) error {
	query := `
		INSERT INTO iso_standards (
			id, code, name, description,
			certification_price, follow_up_price, recertification_price,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		std.ID, std.Code, std.Name, nullIfEmpty(std.Description),
		std.CertificationPrice, std.FollowUpPrice, std.RecertificationPrice,
		std.CreatedAt, std.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert iso_standard: %w", err)
	}
	return nil
}

// Update actualiza los datos y precios por defecto de la norma.
func (r *ISOStandardRepo) Update(std *entity.ISOStandard) error {
	query := `
		UPDATE iso_standards
		SET code = $2, name = $3, description = $4,
		    certification_price = $5, follow_up_price = $6, recertification_price = $7,
		    updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		std.ID, std.Code, std.Name, nullIfEmpty(std.Description),
		std.CertificationPrice, std.FollowUpPrice, std.RecertificationPrice,
		std.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update iso_standard: %w", err)
	}
	return nil
}

// GetByID obtiene una norma por ID.
func (r *ISOStandardRepo) GetByID(id string) (*entity.ISOStandard, error) {
	query := `
		SELECT id, code, name, COALESCE(description, ''),
		       certification_price, follow_up_price, recertification_price,
		       created_at, updated_at
		FROM iso_standards WHERE id = $1`
	var std entity.ISOStandard
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&std.ID, &std.Code, &std.Name, &std.Description,
		&std.CertificationPrice, &std.FollowUpPrice, &std.RecertificationPrice,
		&std.CreatedAt, &std.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get iso_standard: %w", err)
	}
	return &std, nil
}

// List lista todas las normas ordenadas por código.
func (r *ISOStandardRepo) List() ([]*entity.ISOStandard, error) {
	query := `
		SELECT id, code, name, COALESCE(description, ''),
		       certification_price, follow_up_price, recertification_price,
		       created_at, updated_at
		FROM iso_standards ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list iso_standards: %w", err)
	}
	defer rows.Close()
	var list []*entity.ISOStandard
	for rows.Next() {
		var std entity.ISOStandard
		if err := rows.Scan(
			&std.ID, &std.Code, &std.Name, &std.Description,
			&std.CertificationPrice, &std.FollowUpPrice, &std.RecertificationPrice,
			&std.CreatedAt, &std.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan iso_standard: %w", err)
		}
		list = append(list, &std)
	}
	return list, rows.Err()
}
