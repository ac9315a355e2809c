package cnab

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remessa-dev/remessa/internal/checkdigit"
	"github.com/remessa-dev/remessa/internal/field"
	"github.com/remessa-dev/remessa/internal/model"
	"github.com/remessa-dev/remessa/internal/taxid"
)

const (
	dateLayout = "02012006" // DDMMYYYY
	timeLayout = "150405"   // HHMMSS

	bankName = "BANCO DO BRASIL S.A."
)

// EncodeFileHeader renders the type-0 record opening the file. The payer
// is expected to be normalized already (see Generate).
func EncodeFileHeader(p model.PayerProfile, now time.Time, fileSequence int) string {
	return fileHeaderLayout.Build(map[string]string{
		"bank_code":      p.BankCode,
		"payer_tax_id":   p.TaxID,
		"agreement":      p.Agreement,
		"agency":         p.Agency,
		"agency_dv":      p.AgencyDV,
		"account":        p.Account,
		"account_dv":     p.AccountDV,
		"payer_name":     p.Name,
		"bank_name":      bankName,
		"generated_date": now.Format(dateLayout),
		"generated_time": now.Format(timeLayout),
		"file_sequence":  strconv.Itoa(fileSequence),
	})
}

// EncodeBatchHeader renders the type-1 record opening a batch. The entry
// form comes from the batch class and selects the downstream formatting
// of every segment in the batch.
func EncodeBatchHeader(p model.PayerProfile, class BatchClass, batchSequence int) string {
	return batchHeaderLayout.Build(map[string]string{
		"bank_code":      p.BankCode,
		"batch_sequence": strconv.Itoa(batchSequence),
		"entry_form":     class.EntryForm(),
		"payer_tax_id":   p.TaxID,
		"agreement":      p.Agreement,
		"agency":         p.Agency,
		"agency_dv":      p.AgencyDV,
		"account":        p.Account,
		"account_dv":     p.AccountDV,
		"payer_name":     p.Name,
		"street":         p.Address.Street,
		"street_number":  p.Address.Number,
		"complement":     p.Address.Complement,
		"city":           p.Address.City,
		"zip":            field.Digits(p.Address.Zip),
		"state":          p.Address.State,
	})
}

// EncodeSegmentA renders the payment-instruction record for one payee.
func EncodeSegmentA(p model.PayerProfile, payee model.Payee, class BatchClass, batchSequence, recordSequence int, documentNumber int64) string {
	agency, agencyDV := destinationSplit(payee.Agency, class)
	account, accountDV := destinationSplit(payee.Account, class)

	layout := segmentALayout
	if class == ClassSameBankSavings {
		layout = segmentASavingsLayout
	}

	return layout.Build(map[string]string{
		"bank_code":       p.BankCode,
		"batch_sequence":  strconv.Itoa(batchSequence),
		"record_sequence": strconv.Itoa(recordSequence),
		"chamber":         chamberFor(class, amountOf(payee)),
		"dest_bank":       payee.BankCode,
		"dest_agency":     agency,
		"dest_agency_dv":  agencyDV,
		"dest_account":    account,
		"dest_account_dv": accountDV,
		"payee_name":      field.Normalize(payee.Name),
		"document_number": strconv.FormatInt(documentNumber, 10),
		"payment_date":    p.PaymentDate.Format(dateLayout),
		"amount":          Cents(amountOf(payee)),
	})
}

// EncodeSegmentB renders the beneficiary-detail record paired with a
// segment A. The document value repeats the payment amount.
func EncodeSegmentB(p model.PayerProfile, payee model.Payee, batchSequence, recordSequence int) string {
	return segmentBLayout.Build(map[string]string{
		"bank_code":           p.BankCode,
		"batch_sequence":      strconv.Itoa(batchSequence),
		"record_sequence":     strconv.Itoa(recordSequence),
		"registration_type":   taxid.RegistrationType(payee.TaxID),
		"registration_number": field.Digits(payee.TaxID),
		"due_date":            p.PaymentDate.Format(dateLayout),
		"document_value":      Cents(amountOf(payee)),
	})
}

// EncodeBatchTrailer renders the type-5 record closing a batch.
// recordCount includes the batch header, every segment and the trailer
// itself.
func EncodeBatchTrailer(bankCode string, batchSequence, recordCount int, total decimal.Decimal) string {
	return batchTrailerLayout.Build(map[string]string{
		"bank_code":      bankCode,
		"batch_sequence": strconv.Itoa(batchSequence),
		"record_count":   strconv.Itoa(recordCount),
		"total_amount":   Cents(total),
	})
}

// EncodeFileTrailer renders the type-9 record closing the file.
// recordCount is the total number of records emitted, header and trailer
// included.
func EncodeFileTrailer(bankCode string, batchCount, recordCount int) string {
	return fileTrailerLayout.Build(map[string]string{
		"bank_code":    bankCode,
		"batch_count":  strconv.Itoa(batchCount),
		"record_count": strconv.Itoa(recordCount),
	})
}

// Cents renders a decimal amount as whole cents, the layout's monetary
// representation (zero-padding happens in the field table).
func Cents(v decimal.Decimal) string {
	return v.Shift(2).Truncate(0).String()
}

// chamberFor selects the clearing chamber: interbank transfers ride TED
// (018); same-bank credits are book transfers (000). The amount is part
// of the contract because the bank reserves a same-day chamber for
// sub-threshold payments; with payees pre-classified by bank, the class
// alone decides today.
func chamberFor(class BatchClass, _ decimal.Decimal) string {
	if class == ClassOtherBank {
		return chamberTED
	}
	return chamberInternal
}

const (
	chamberInternal = "000"
	chamberTED      = "018"
)

// destinationSplit separates a destination agency or account from its
// verification digit. Same-bank destinations compute the digit with the
// bank's modulus-11 scheme when it was not supplied; other-bank
// destinations carry whatever the payee gave, blank if none.
func destinationSplit(value string, class BatchClass) (base, digit string) {
	if class == ClassOtherBank {
		return checkdigit.Split(value, false)
	}
	base, digit = checkdigit.Split(value, true)
	if digit == "" {
		digit = checkdigit.Compute(base)
	}
	return base, digit
}

func amountOf(p model.Payee) decimal.Decimal {
	v, err := decimal.NewFromString(p.Value)
	if err != nil {
		return decimal.Zero
	}
	return v
}
