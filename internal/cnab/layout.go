// Package cnab encodes payment batches into the bank's 240-byte segmented
// remittance layout: one file header, one or more batches of segment
// pairs, one file trailer. Field positions are format-mandated, so every
// record kind is declared as an ordered layout table instead of inline
// offsets; a single width-sum invariant catches positional bugs in any of
// them.
package cnab

import (
	"strings"

	"github.com/remessa-dev/remessa/internal/field"
)

// RecordLen is the fixed length of every record in the file.
const RecordLen = 240

// Field is one positional field of a record layout.
type Field struct {
	Name  string
	Width int
	Fill  byte
	Align field.Align
	Const string // literal content; overrides any supplied value
}

// Layout is the ordered field table for one record kind.
type Layout []Field

// TotalWidth returns the sum of all field widths. Every layout in this
// package must total RecordLen.
func (l Layout) TotalWidth() int {
	total := 0
	for _, f := range l {
		total += f.Width
	}
	return total
}

// Build renders one record from named values. Unknown or absent names
// render as pure filler; every value is padded or truncated to its
// field's exact width, so the result is always TotalWidth characters.
func (l Layout) Build(values map[string]string) string {
	var b strings.Builder
	b.Grow(l.TotalWidth())
	for _, f := range l {
		v := f.Const
		if v == "" && f.Name != "" {
			v = values[f.Name]
		}
		b.WriteString(field.Pad(v, f.Width, f.Fill, f.Align))
	}
	return b.String()
}

// Table constructors. Numeric fields right-justify with zeros, text
// fields left-justify with spaces; filler is blank, zeros is a
// zero-filled constant region.

func num(name string, width int) Field {
	return Field{Name: name, Width: width, Fill: '0', Align: field.AlignRight}
}

func text(name string, width int) Field {
	return Field{Name: name, Width: width, Fill: ' ', Align: field.AlignLeft}
}

func lit(value string, width int) Field {
	return Field{Width: width, Fill: ' ', Align: field.AlignLeft, Const: value}
}

func litNum(value string, width int) Field {
	return Field{Width: width, Fill: '0', Align: field.AlignRight, Const: value}
}

func filler(width int) Field {
	return Field{Width: width, Fill: ' ', Align: field.AlignLeft}
}

func zeros(width int) Field {
	return Field{Width: width, Fill: '0', Align: field.AlignRight}
}

// Record type and service constants mandated by the layout.
const (
	fileLot    = "0000" // file header/trailer pseudo-lot
	trailerLot = "9999"

	recordFileHeader   = "0"
	recordBatchHeader  = "1"
	recordDetail       = "3"
	recordBatchTrailer = "5"
	recordFileTrailer  = "9"

	remittanceMarker  = "1"   // file direction: client -> bank
	fileLayoutVersion = "103" // published file layout version
	lotLayoutVersion  = "046" // published batch layout version
	serviceType       = "20"  // supplier payments
	operationCredit   = "C"

	companyRegistration = "2" // payer is always a company (CNPJ)
	currencyCode        = "BRL"
)

// fileHeaderLayout is the single type-0 record opening the file.
var fileHeaderLayout = Layout{
	num("bank_code", 3),
	litNum(fileLot, 4),
	litNum(recordFileHeader, 1),
	filler(9),
	litNum(companyRegistration, 1),
	num("payer_tax_id", 14),
	text("agreement", 20),
	num("agency", 5),
	text("agency_dv", 1),
	num("account", 12),
	text("account_dv", 1),
	filler(1), // combined agency/account digit, unused by this bank
	text("payer_name", 30),
	text("bank_name", 30),
	filler(10),
	litNum(remittanceMarker, 1),
	num("generated_date", 8), // DDMMYYYY
	num("generated_time", 6), // HHMMSS
	num("file_sequence", 6),
	litNum(fileLayoutVersion, 3),
	litNum("00000", 5), // recording density
	filler(20),         // reserved: bank
	filler(20),         // reserved: company
	filler(29),
}

// batchHeaderLayout is the type-1 record opening each batch.
var batchHeaderLayout = Layout{
	num("bank_code", 3),
	num("batch_sequence", 4),
	litNum(recordBatchHeader, 1),
	lit(operationCredit, 1),
	litNum(serviceType, 2),
	num("entry_form", 2),
	litNum(lotLayoutVersion, 3),
	filler(1),
	litNum(companyRegistration, 1),
	num("payer_tax_id", 14),
	text("agreement", 20),
	num("agency", 5),
	text("agency_dv", 1),
	num("account", 12),
	text("account_dv", 1),
	filler(1),
	text("payer_name", 30),
	filler(40), // message 1
	text("street", 30),
	num("street_number", 5),
	text("complement", 15),
	text("city", 20),
	num("zip", 8),
	text("state", 2),
	filler(8),
	filler(10), // return occurrences
}

// segmentALayout is the payment-instruction detail record. The complement
// block near the tail is blank for checking/interbank credits; savings
// credits use segmentASavingsLayout, which differs only there.
var segmentALayout = Layout{
	num("bank_code", 3),
	num("batch_sequence", 4),
	litNum(recordDetail, 1),
	num("record_sequence", 5),
	lit("A", 1),
	litNum("0", 1),  // movement type: inclusion
	litNum("00", 2), // movement code: credit on due date
	num("chamber", 3),
	num("dest_bank", 3),
	num("dest_agency", 5),
	text("dest_agency_dv", 1),
	num("dest_account", 12),
	text("dest_account_dv", 1),
	filler(1),
	text("payee_name", 30),
	num("document_number", 20),
	num("payment_date", 8), // DDMMYYYY
	lit(currencyCode, 3),
	zeros(15), // currency quantity, unused for BRL
	num("amount", 15),
	filler(20), // bank-assigned number, returned on settlement
	zeros(8),   // effective date, bank-filled on return
	zeros(15),  // effective amount, bank-filled on return
	filler(40), // information 2
	filler(2), // document purpose
	filler(5), // transfer purpose
	Field{Name: "account_complement", Width: 5, Fill: ' ', Align: field.AlignLeft},
	litNum("0", 1), // notice to payee: none
	filler(10),     // return occurrences
}

// segmentASavingsLayout mirrors segmentALayout with the savings operation
// complement in place of the blank account-complement block.
var segmentASavingsLayout = savingsVariant(segmentALayout)

// savingsComplement is the operation complement the bank requires on
// savings credits.
const savingsComplement = "00005"

func savingsVariant(l Layout) Layout {
	out := make(Layout, len(l))
	copy(out, l)
	for i, f := range out {
		if f.Name == "account_complement" {
			out[i] = litNum(savingsComplement, f.Width)
		}
	}
	return out
}

// segmentBLayout is the beneficiary-detail record paired with every
// segment A.
var segmentBLayout = Layout{
	num("bank_code", 3),
	num("batch_sequence", 4),
	litNum(recordDetail, 1),
	num("record_sequence", 5),
	lit("B", 1),
	filler(3),
	num("registration_type", 1),
	num("registration_number", 14),
	filler(30), // payee street
	zeros(5),   // payee street number
	filler(15), // payee complement
	filler(15), // payee district
	filler(20), // payee city
	zeros(8),   // payee zip
	filler(2),  // payee state
	num("due_date", 8),
	num("document_value", 15),
	zeros(15), // rebate
	zeros(15), // discount
	zeros(15), // interest
	zeros(15), // fine
	filler(15), // document reference
	litNum("0", 1),
	filler(14),
}

// batchTrailerLayout is the type-5 record closing each batch.
var batchTrailerLayout = Layout{
	num("bank_code", 3),
	num("batch_sequence", 4),
	litNum(recordBatchTrailer, 1),
	filler(9),
	num("record_count", 6),
	num("total_amount", 18),
	zeros(18), // total currency quantity
	zeros(6),  // debit notice number
	filler(165),
	filler(10), // return occurrences
}

// fileTrailerLayout is the single type-9 record closing the file.
var fileTrailerLayout = Layout{
	num("bank_code", 3),
	litNum(trailerLot, 4),
	litNum(recordFileTrailer, 1),
	filler(9),
	num("batch_count", 6),
	num("record_count", 6),
	zeros(6), // account-conciliation lot count
	filler(205),
}
