package model

// AccountType tags the destination account of a payee. Same-bank payees
// use checking or savings; other-bank payees use ted or savings.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeTED      AccountType = "ted"
)

// Payee is one payment destination as imported. Value stays a raw string
// until the validator parses it, so a malformed amount surfaces as a
// field error instead of an import failure.
type Payee struct {
	Name        string
	TaxID       string // CPF or CNPJ, selected by digit count
	BankCode    string
	Agency      string // may carry a "-DV" suffix
	Account     string // may carry a "-DV" suffix
	AccountType AccountType
	Value       string // positive decimal, e.g. "150.00"
}
