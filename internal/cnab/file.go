package cnab

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remessa-dev/remessa/internal/checkdigit"
	"github.com/remessa-dev/remessa/internal/field"
	"github.com/remessa-dev/remessa/internal/model"
)

// lineTerminator is mandated by the bank's intake; it follows every
// record, the last one included.
const lineTerminator = "\r\n"

// productCode is the bank's fixed product identifier appended to the
// 9-digit agreement number inside the 20-char agreement field.
const productCode = "0126"

// Fatal configuration errors abort the whole generation; no partial file
// is produced. ErrNoPayees is distinct so callers can tell "nothing to
// do" from "everything failed".
var (
	ErrMissingPayerName   = errors.New("payer name is required")
	ErrMissingPayerTaxID  = errors.New("payer tax ID is required")
	ErrMissingPaymentDate = errors.New("payment date is required")
	ErrNoPayees           = errors.New("no payees to encode")
)

// Options carries the per-run inputs that are not part of the payer
// profile. FileSequence and DocumentSeed come from one persisted counter
// source per run; they are the only fields that vary between otherwise
// identical runs.
type Options struct {
	Now          time.Time
	FileSequence int
	DocumentSeed int64
}

// Result is one generated remittance file plus the totals callers
// surface.
type Result struct {
	Bytes        []byte
	Lines        int
	Batches      int
	Payees       int
	Total        decimal.Decimal
	ClassCounts  map[BatchClass]int
	FileSequence int
}

// runState owns the mutable counters of one generation run: batch
// sequence, emitted lines and the shared document-number counter. One
// Generate call owns one instance; the type is not safe for concurrent
// reuse.
type runState struct {
	batchSequence int
	lines         []string
	documentNext  int64
}

func (s *runState) nextDocument() int64 {
	n := s.documentNext
	s.documentNext++
	return n
}

// Generate encodes a payer profile and a validated payee list into one
// remittance file blob. Payees are grouped by destination class; empty
// classes are skipped without consuming a batch sequence number.
func Generate(payer model.PayerProfile, payees []model.Payee, opts Options) (*Result, error) {
	if strings.TrimSpace(payer.Name) == "" {
		return nil, ErrMissingPayerName
	}
	if strings.TrimSpace(payer.TaxID) == "" {
		return nil, ErrMissingPayerTaxID
	}
	if payer.PaymentDate.IsZero() {
		return nil, ErrMissingPaymentDate
	}
	if len(payees) == 0 {
		return nil, ErrNoPayees
	}

	p := normalizePayer(payer)
	if len(p.TaxID) != 14 {
		return nil, fmt.Errorf("payer tax ID: expected 14 digits, got %d", len(p.TaxID))
	}

	state := &runState{documentNext: opts.DocumentSeed}
	state.lines = append(state.lines, EncodeFileHeader(p, opts.Now, opts.FileSequence))

	groups := GroupByClass(payees, p.BankCode)
	total := decimal.Zero
	counts := make(map[BatchClass]int)

	for _, class := range classOrder {
		group := groups[class]
		if len(group) == 0 {
			continue
		}
		state.batchSequence++
		res := processBatch(p, group, class, state.batchSequence, state.nextDocument)
		state.lines = append(state.lines, res.lines...)
		total = total.Add(res.sum)
		counts[class] = len(group)
	}

	recordCount := len(state.lines) + 1 // + file trailer
	state.lines = append(state.lines, EncodeFileTrailer(p.BankCode, state.batchSequence, recordCount))

	var blob strings.Builder
	for _, line := range state.lines {
		blob.WriteString(line)
		blob.WriteString(lineTerminator)
	}

	return &Result{
		Bytes:        []byte(blob.String()),
		Lines:        len(state.lines),
		Batches:      state.batchSequence,
		Payees:       len(payees),
		Total:        total,
		ClassCounts:  counts,
		FileSequence: opts.FileSequence,
	}, nil
}

// normalizePayer prepares the profile for encoding: uppercase,
// accent-stripped text, digit-only identifiers, check digits split off
// when they arrived embedded in the agency/account strings.
func normalizePayer(p model.PayerProfile) model.PayerProfile {
	out := p
	out.Name = field.Normalize(p.Name)
	out.TaxID = field.Digits(p.TaxID)
	out.BankCode = field.Digits(p.BankCode)
	out.Agreement = field.ZeroPad(field.Digits(p.Agreement), 9) + productCode

	out.Agency, out.AgencyDV = splitEmbedded(p.Agency, p.AgencyDV)
	out.Account, out.AccountDV = splitEmbedded(p.Account, p.AccountDV)

	out.Address.Street = field.Normalize(p.Address.Street)
	out.Address.Complement = field.Normalize(p.Address.Complement)
	out.Address.City = field.Normalize(p.Address.City)
	out.Address.State = field.Normalize(p.Address.State)
	return out
}

func splitEmbedded(value, dv string) (string, string) {
	if dv != "" {
		return field.Digits(value), strings.ToUpper(strings.TrimSpace(dv))
	}
	return checkdigit.Split(value, false)
}
