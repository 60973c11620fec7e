package postgres

import (
	"context"
	"fmt"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

var _ repository.CertificationStepRepository = (*CertificationStepRepo)(nil)

// CertificationStepRepo implementación de CertificationStepRepository.
type CertificationStepRepo struct {
	q Querier
}

// NewCertificationStepRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCertificationStepRepository(q Querier) *CertificationStepRepo {
	return &CertificationStepRepo{q: q}
}

// Create persiste una etapa del flujo de certificación.
func (r *CertificationStepRepo) Create(step *entity.CertificationStep) error {
	query := `
		INSERT INTO certification_steps (id, position, title, description)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		step.ID, step.Position, step.Title, nullIfEmpty(step.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert certification_step: %w", err)
	}
	return nil
}

// List lista las etapas ordenadas por posición.
func (r *CertificationStepRepo) List() ([]*entity.CertificationStep, error) {
	query := `
		SELECT id, position, title, COALESCE(description, '')
		FROM certification_steps ORDER BY position`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list certification_steps: %w", err)
	}
	defer rows.Close()
	var list []*entity.CertificationStep
	for rows.Next() {
		var step entity.CertificationStep
		if err := rows.Scan(&step.ID, &step.Position, &step.Title, &step.Description); err != nil {
			return nil, fmt.Errorf("scan certification_step: %w", err)
		}
		list = append(list, &step)
	}
	return list, rows.Err()
}
