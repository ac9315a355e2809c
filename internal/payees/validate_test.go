package payees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remessa-dev/remessa/internal/model"
)

const payerBank = "001"

func validSameBankPayee() model.Payee {
	return model.Payee{
		Name:        "JOAO SILVA",
		TaxID:       "52998224725",
		BankCode:    payerBank,
		Agency:      "1234-3",
		Account:     "123456-0",
		AccountType: model.AccountTypeChecking,
		Value:       "150.00",
	}
}

func validOtherBankPayee() model.Payee {
	return model.Payee{
		Name:        "MARIA SOUZA",
		TaxID:       "11444777000161",
		BankCode:    "237",
		Agency:      "1525",
		Account:     "87963",
		AccountType: model.AccountTypeTED,
		Value:       "2750.10",
	}
}

func TestValidate_SameBankValid(t *testing.T) {
	assert.Empty(t, Validate(validSameBankPayee(), payerBank))
}

func TestValidate_OtherBankValid(t *testing.T) {
	assert.Empty(t, Validate(validOtherBankPayee(), payerBank))
}

func TestValidate_SameBankCheckDigitMismatch(t *testing.T) {
	p := validSameBankPayee()
	p.Account = "123456-1"

	errs := Validate(p, payerBank)
	require.Len(t, errs, 1)
	assert.Equal(t, "account", errs[0].Field)
	assert.Equal(t, "0", errs[0].Expected)
	assert.Equal(t, "1", errs[0].Actual)
}

func TestValidate_SameBankAgencyWithoutSeparator(t *testing.T) {
	// "12343" is read as base 1234 + digit 3, same as "1234-3".
	p := validSameBankPayee()
	p.Agency = "12343"
	assert.Empty(t, Validate(p, payerBank))
}

func TestValidate_SameBankRejectsTED(t *testing.T) {
	p := validSameBankPayee()
	p.AccountType = model.AccountTypeTED

	errs := Validate(p, payerBank)
	require.Len(t, errs, 1)
	assert.Equal(t, "account_type", errs[0].Field)
}

func TestValidate_OtherBankRejectsChecking(t *testing.T) {
	p := validOtherBankPayee()
	p.AccountType = model.AccountTypeChecking

	errs := Validate(p, payerBank)
	require.Len(t, errs, 1)
	assert.Equal(t, "account_type", errs[0].Field)
}

func TestValidate_OtherBankSkipsCheckDigits(t *testing.T) {
	// Destination banks verify their own digits; presence is enough.
	p := validOtherBankPayee()
	p.Agency = "9999"
	p.Account = "1"
	assert.Empty(t, Validate(p, payerBank))
}

func TestValidate_InvalidTaxID(t *testing.T) {
	p := validSameBankPayee()
	p.TaxID = "52998224726"

	errs := Validate(p, payerBank)
	require.Len(t, errs, 1)
	assert.Equal(t, "tax_id", errs[0].Field)
}

func TestValidate_Value(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"positive", "150.00", true},
		{"positive no decimals", "1", true},
		{"zero", "0", false},
		{"negative", "-5.00", false},
		{"not a number", "abc", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validSameBankPayee()
			p.Value = tt.value
			errs := Validate(p, payerBank)
			if tt.valid {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "value", errs[0].Field)
		})
	}
}

func TestValidate_ReportsEveryDefect(t *testing.T) {
	// An empty record reports all defects at once, never just the first.
	errs := Validate(model.Payee{}, payerBank)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"name", "tax_id", "bank_code", "agency", "account", "account_type", "value"} {
		assert.True(t, fields[f], "expected a defect on %s", f)
	}
}

func TestPartitionAll(t *testing.T) {
	bad1 := validSameBankPayee()
	bad1.Value = "-1"
	bad2 := validOtherBankPayee()
	bad2.Name = ""

	part := PartitionAll([]model.Payee{validSameBankPayee(), bad1, validOtherBankPayee(), bad2}, payerBank)

	assert.Equal(t, 4, part.TotalCount)
	assert.Equal(t, 2, part.ValidCount)
	require.Len(t, part.Valid, 2)
	require.Len(t, part.Invalid, 2)
	assert.Equal(t, "JOAO SILVA", part.Valid[0].Name)
	assert.Equal(t, "MARIA SOUZA", part.Valid[1].Name)
	assert.Equal(t, "-1", part.Invalid[0].Payee.Value)
}

func TestPartitionAll_Empty(t *testing.T) {
	part := PartitionAll(nil, payerBank)
	assert.Zero(t, part.TotalCount)
	assert.Zero(t, part.ValidCount)
	assert.Empty(t, part.Valid)
	assert.Empty(t, part.Invalid)
}
