package entity

// Monedas de cuentas bancarias.
const (
	CurrencySoles   = "soles"
	CurrencyDolares = "dolares"
)

// BankAccount es una cuenta de la empresa que se imprime al pie de la
// cotización para que el cliente realice el pago.
type BankAccount struct {
	ID            string
	BankName      string
	AccountHolder string
	AccountNumber string
	CCI           string // Código de Cuenta Interbancario
	Currency      string // soles | dolares
}
