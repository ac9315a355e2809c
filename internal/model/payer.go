package model

import "time"

// Address is the payer address block carried in every batch header.
type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	Zip        string
}

// PayerProfile identifies the paying company toward the bank. It is built
// once per generation run, normalized (uppercase, accent-stripped,
// zero-padded) before encoding and immutable afterwards.
type PayerProfile struct {
	Name      string
	TaxID     string // CNPJ, 14 digits after stripping
	BankCode  string
	Agency    string // base, without check digit
	AgencyDV  string
	Account   string // base, without check digit
	AccountDV string
	Agreement string // contract number with the bank
	Address   Address

	PaymentDate time.Time
}
