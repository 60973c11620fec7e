package repository

import "github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"

// BankAccountRepository define el puerto de persistencia para cuentas bancarias.
type BankAccountRepository interface {
	Create(acc *entity.BankAccount) error
	List() ([]*entity.BankAccount, error)
	Delete(id string) error
}
