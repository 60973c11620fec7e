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

var _ repository.AdvisorRepository = (*AdvisorRepo)(nil)

// AdvisorRepo implementación de AdvisorRepository (usable con pool o tx).
type AdvisorRepo struct {
	q Querier
}

// NewAdvisorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdvisorRepository(q Querier) *AdvisorRepo {
	return &AdvisorRepo{q: q}
}

// Create persiste un asesor.
func (r *AdvisorRepo) Create(a *entity.Advisor) error {
	query := `
		INSERT INTO advisors (id, name, email, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Email, nullIfEmpty(a.Phone), a.PasswordHash, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert advisor: %w", err)
	}
	return nil
}

// GetByID obtiene un asesor por ID.
func (r *AdvisorRepo) GetByID(id string) (*entity.Advisor, error) {
	return r.getBy("id", id)
}

// GetByEmail obtiene un asesor por email (login).
func (r *AdvisorRepo) GetByEmail(email string) (*entity.Advisor, error) {
	return r.getBy("email", email)
}

func (r *AdvisorRepo) getBy(column, value string) (*entity.Advisor, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), password_hash, created_at, updated_at
		FROM advisors WHERE ` + column + ` = $1`
	var a entity.Advisor
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get advisor by %s: %w", column, err)
	}
	return &a, nil
}

// List lista los asesores ordenados por nombre.
func (r *AdvisorRepo) List() ([]*entity.Advisor, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), password_hash, created_at, updated_at
		FROM advisors ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list advisors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Advisor
	for rows.Next() {
		var a entity.Advisor
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan advisor: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
