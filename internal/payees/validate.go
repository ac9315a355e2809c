// Package payees validates payment destinations against the bank's
// acceptance rules and partitions them into encodable and rejected sets.
package payees

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/remessa-dev/remessa/internal/checkdigit"
	"github.com/remessa-dev/remessa/internal/model"
	"github.com/remessa-dev/remessa/internal/taxid"
)

// Validate applies every acceptance rule to one payee and returns the
// full defect list. Rules never short-circuit: a record missing its name
// AND carrying a bad account reports both, so the operator fixes the
// record once.
func Validate(p model.Payee, payerBank string) []model.FieldError {
	var errs []model.FieldError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "name is required"})
	}

	if strings.TrimSpace(p.TaxID) == "" {
		errs = append(errs, model.FieldError{Field: "tax_id", Message: "tax ID is required"})
	} else if !taxid.IsValid(p.TaxID) {
		errs = append(errs, model.FieldError{Field: "tax_id", Message: "tax ID check digits do not match"})
	}

	if strings.TrimSpace(p.BankCode) == "" {
		errs = append(errs, model.FieldError{Field: "bank_code", Message: "bank code is required"})
	}

	if sameBank(p, payerBank) {
		errs = append(errs, validateSameBank(p)...)
	} else {
		errs = append(errs, validateOtherBank(p)...)
	}

	errs = append(errs, validateValue(p.Value)...)
	return errs
}

// PartitionAll validates every payee, excluding (not failing on) any
// record with one or more defects. A list with some invalid payees still
// yields a file for the valid remainder; callers surface the counts.
func PartitionAll(list []model.Payee, payerBank string) model.Partition {
	part := model.Partition{TotalCount: len(list)}
	for _, p := range list {
		if errs := Validate(p, payerBank); len(errs) > 0 {
			part.Invalid = append(part.Invalid, model.PayeeErrors{Payee: p, Errors: errs})
			continue
		}
		part.Valid = append(part.Valid, p)
	}
	part.ValidCount = len(part.Valid)
	return part
}

func sameBank(p model.Payee, payerBank string) bool {
	return strings.TrimSpace(p.BankCode) == payerBank
}

// validateSameBank enforces the payer-bank rules: agency and account must
// be present with verification digits the bank would compute itself, and
// the destination must be a checking or savings account.
func validateSameBank(p model.Payee) []model.FieldError {
	var errs []model.FieldError
	errs = append(errs, validateVerified("agency", p.Agency)...)
	errs = append(errs, validateVerified("account", p.Account)...)

	switch p.AccountType {
	case model.AccountTypeChecking, model.AccountTypeSavings:
	default:
		errs = append(errs, model.FieldError{
			Field:   "account_type",
			Message: "same-bank payees must use checking or savings",
			Actual:  string(p.AccountType),
		})
	}
	return errs
}

// validateOtherBank only requires presence: the destination bank verifies
// its own account digits, and the transfer rides an interbank rail.
func validateOtherBank(p model.Payee) []model.FieldError {
	var errs []model.FieldError
	if strings.TrimSpace(p.Agency) == "" {
		errs = append(errs, model.FieldError{Field: "agency", Message: "agency is required"})
	}
	if strings.TrimSpace(p.Account) == "" {
		errs = append(errs, model.FieldError{Field: "account", Message: "account is required"})
	}

	switch p.AccountType {
	case model.AccountTypeTED, model.AccountTypeSavings:
	default:
		errs = append(errs, model.FieldError{
			Field:   "account_type",
			Message: "other-bank payees must use ted or savings",
			Actual:  string(p.AccountType),
		})
	}
	return errs
}

func validateVerified(fieldName, value string) []model.FieldError {
	base, digit := checkdigit.Split(value, true)
	if base == "" {
		return []model.FieldError{{Field: fieldName, Message: fieldName + " is required"}}
	}
	want := checkdigit.Compute(base)
	if digit != want {
		return []model.FieldError{{
			Field:    fieldName,
			Message:  "check digit mismatch",
			Expected: want,
			Actual:   digit,
		}}
	}
	return nil
}

func validateValue(raw string) []model.FieldError {
	if strings.TrimSpace(raw) == "" {
		return []model.FieldError{{Field: "value", Message: "value is required"}}
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return []model.FieldError{{Field: "value", Message: "value is not a number", Actual: raw}}
	}
	if !v.IsPositive() {
		return []model.FieldError{{Field: "value", Message: "value must be greater than zero", Actual: raw}}
	}
	return nil
}
