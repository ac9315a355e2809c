package model

import "fmt"

// FieldError describes a single validation defect on one payee field.
// Expected/Actual carry check-digit values when the rule is a digit
// comparison, so the operator can see what the bank would compute.
type FieldError struct {
	Field    string
	Message  string
	Expected string
	Actual   string
}

func (e FieldError) Error() string {
	if e.Expected != "" || e.Actual != "" {
		return fmt.Sprintf("%s: %s (expected %q, got %q)", e.Field, e.Message, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PayeeErrors pairs a rejected payee with its full defect list.
type PayeeErrors struct {
	Payee  Payee
	Errors []FieldError
}

// Partition is the outcome of validating a payee list: valid records in
// input order, invalid records with their defects, and the counts the
// caller must surface ("N of M included").
type Partition struct {
	Valid      []Payee
	Invalid    []PayeeErrors
	ValidCount int
	TotalCount int
}
