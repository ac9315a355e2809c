package payees

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/remessa-dev/remessa/internal/model"
)

// Header is the CSV header for a payee input file.
const Header = "name,tax_id,bank_code,agency,account,account_type,value"

const (
	numFields   = 7
	colName     = 0
	colTaxID    = 1
	colBankCode = 2
	colAgency   = 3
	colAccount  = 4
	colType     = 5
	colValue    = 6
)

// ReadPayees reads all payees from a CSV reader. Rows are returned as-is;
// validation happens separately so one malformed row does not hide the
// defects of the others.
func ReadPayees(r io.Reader) ([]model.Payee, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payees CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	payees := make([]model.Payee, 0, len(records)-1)
	for _, rec := range records[1:] {
		payees = append(payees, model.Payee{
			Name:        strings.TrimSpace(rec[colName]),
			TaxID:       strings.TrimSpace(rec[colTaxID]),
			BankCode:    strings.TrimSpace(rec[colBankCode]),
			Agency:      strings.TrimSpace(rec[colAgency]),
			Account:     strings.TrimSpace(rec[colAccount]),
			AccountType: model.AccountType(strings.ToLower(strings.TrimSpace(rec[colType]))),
			Value:       strings.TrimSpace(rec[colValue]),
		})
	}
	return payees, nil
}

// WritePayees writes payees to a CSV writer (including header). Used by
// init to scaffold a sample input file.
func WritePayees(w io.Writer, payees []model.Payee) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range payees {
		row := make([]string, numFields)
		row[colName] = p.Name
		row[colTaxID] = p.TaxID
		row[colBankCode] = p.BankCode
		row[colAgency] = p.Agency
		row[colAccount] = p.Account
		row[colType] = string(p.AccountType)
		row[colValue] = p.Value
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
