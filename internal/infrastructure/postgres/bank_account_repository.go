package postgres

import (
	"context"
	"fmt"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación de BankAccountRepository (usable con pool o tx).
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create persiste una cuenta bancaria de la empresa.
func (r *BankAccountRepo) Create(acc *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, bank_name, account_holder, account_number, cci, currency)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		acc.ID, acc.BankName, acc.AccountHolder, acc.AccountNumber, nullIfEmpty(acc.CCI), acc.Currency,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank_account: %w", err)
	}
	return nil
}

// List lista las cuentas, soles primero.
func (r *BankAccountRepo) List() ([]*entity.BankAccount, error) {
	query := `
		SELECT id, bank_name, account_holder, account_number, COALESCE(cci, ''), currency
		FROM bank_accounts ORDER BY currency DESC, bank_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bank_accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var acc entity.BankAccount
		if err := rows.Scan(&acc.ID, &acc.BankName, &acc.AccountHolder, &acc.AccountNumber, &acc.CCI, &acc.Currency); err != nil {
			return nil, fmt.Errorf("scan bank_account: %w", err)
		}
		list = append(list, &acc)
	}
	return list, rows.Err()
}

// Delete elimina una cuenta por ID.
func (r *BankAccountRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank_account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
