package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var (
	_ quote.QuoteTxRunner      = (*TxRunner)(nil)
	_ quote.AttachmentTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuotation inicia una transacción, ejecuta fn con el repositorio de
// cotizaciones atado a la tx y hace Commit o Rollback. La asignación del
// código de cotización corre aquí para que el constraint UNIQUE resuelva las
// carreras entre creaciones concurrentes.
func (r *TxRunner) RunQuotation(ctx context.Context, fn func(repo repository.QuotationRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuotationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAttachment inicia una transacción, ejecuta fn con el repositorio de
// adjuntos atado a la tx y hace Commit o Rollback. Desactivar el adjunto
// vigente y activar el nuevo confirman juntos; un fallo en cualquiera de las
// dos sentencias deja el adjunto anterior intacto.
func (r *TxRunner) RunAttachment(ctx context.Context, fn func(repo repository.AttachedFileRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAttachedFileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
