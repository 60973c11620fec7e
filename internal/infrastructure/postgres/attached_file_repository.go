package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

var _ repository.AttachedFileRepository = (*AttachedFileRepo)(nil)

// AttachedFileRepo implementación de AttachedFileRepository. Los bytes del
// PDF se guardan en una columna bytea.
type AttachedFileRepo struct {
	q Querier
}

// NewAttachedFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttachedFileRepository(q Querier) *AttachedFileRepo {
	return &AttachedFileRepo{q: q}
}

// SaveAsActive desactiva el adjunto activo actual y persiste el nuevo como
// activo. Debe ejecutarse con un Querier transaccional (TxRunner.RunAttachment):
// si el INSERT falla, la desactivación se revierte con él.
func (r *AttachedFileRepo) SaveAsActive(f *entity.AttachedFile) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `UPDATE attached_files SET is_active = FALSE WHERE is_active`); err != nil {
		return fmt.Errorf("deactivate attached_files: %w", err)
	}
	query := `
		INSERT INTO attached_files (id, file_name, data, is_active, created_at)
		VALUES ($1, $2, $3, TRUE, $4)`
	if _, err := r.q.Exec(ctx, query, f.ID, f.FileName, f.Data, f.CreatedAt); err != nil {
		return fmt.Errorf("insert attached_file: %w", err)
	}
	return nil
}

// GetActive devuelve el adjunto activo con sus bytes, o nil si no hay. El
// ORDER BY hace determinista la elección (el más reciente) si alguna vez
// quedaran dos filas activas.
func (r *AttachedFileRepo) GetActive() (*entity.AttachedFile, error) {
	query := `
		SELECT id, file_name, data, is_active, created_at
		FROM attached_files WHERE is_active
		ORDER BY created_at DESC LIMIT 1`
	var f entity.AttachedFile
	err := r.q.QueryRow(context.Background(), query).Scan(
		&f.ID, &f.FileName, &f.Data, &f.IsActive, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active attached_file: %w", err)
	}
	return &f, nil
}
