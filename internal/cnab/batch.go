package cnab

import (
	"github.com/shopspring/decimal"

	"github.com/remessa-dev/remessa/internal/model"
)

// BatchClass is the destination classification that decides which batch a
// payee lands in. One file carries at most one batch per class, emitted
// in a fixed order.
type BatchClass int

const (
	ClassSameBankChecking BatchClass = iota
	ClassSameBankSavings
	ClassOtherBank
)

// classOrder is the mandated emission order of batches within a file.
var classOrder = []BatchClass{ClassSameBankChecking, ClassSameBankSavings, ClassOtherBank}

func (c BatchClass) String() string {
	switch c {
	case ClassSameBankChecking:
		return "same-bank-checking"
	case ClassSameBankSavings:
		return "same-bank-savings"
	case ClassOtherBank:
		return "other-bank"
	}
	return "unknown"
}

// EntryForm returns the layout's entry-form code for the class: credit to
// checking (01), credit to savings (05) or interbank transfer (03).
func (c BatchClass) EntryForm() string {
	switch c {
	case ClassSameBankSavings:
		return "05"
	case ClassOtherBank:
		return "03"
	default:
		return "01"
	}
}

// Classify places a validated payee in its batch class from bank-code
// equality with the payer's bank plus the account-type tag.
func Classify(p model.Payee, payerBank string) BatchClass {
	if p.BankCode != payerBank {
		return ClassOtherBank
	}
	if p.AccountType == model.AccountTypeSavings {
		return ClassSameBankSavings
	}
	return ClassSameBankChecking
}

// GroupByClass partitions payees into their batch classes, preserving
// input order within each group.
func GroupByClass(payees []model.Payee, payerBank string) map[BatchClass][]model.Payee {
	groups := make(map[BatchClass][]model.Payee)
	for _, p := range payees {
		c := Classify(p, payerBank)
		groups[c] = append(groups[c], p)
	}
	return groups
}

// batchResult carries one emitted batch back to the assembler.
type batchResult struct {
	lines       []string
	sum         decimal.Decimal
	recordCount int
}

// processBatch emits one complete batch: header, a segment A/B pair per
// payee, trailer. The record-sequence counter is shared across the whole
// batch, not reset per payee, and the trailer count covers header +
// segments + trailer.
func processBatch(payer model.PayerProfile, group []model.Payee, class BatchClass, batchSequence int, nextDocument func() int64) batchResult {
	res := batchResult{sum: decimal.Zero}

	res.lines = append(res.lines, EncodeBatchHeader(payer, class, batchSequence))

	recordSeq := 0
	for _, p := range group {
		recordSeq++
		res.lines = append(res.lines, EncodeSegmentA(payer, p, class, batchSequence, recordSeq, nextDocument()))
		recordSeq++
		res.lines = append(res.lines, EncodeSegmentB(payer, p, batchSequence, recordSeq))
		res.sum = res.sum.Add(amountOf(p))
	}

	res.recordCount = 2*len(group) + 2
	res.lines = append(res.lines, EncodeBatchTrailer(payer.BankCode, batchSequence, res.recordCount, res.sum))
	return res
}
