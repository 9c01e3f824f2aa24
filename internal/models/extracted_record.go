package models

// ExtractedRecord holds the fields pulled out of one wire/ACH recall narrative.
// Every field is independently optional; a nil pointer means the narrative
// contained no recognizable convention for that field. The record is never
// mutated after extraction.
type ExtractedRecord struct {
	// VBAN is the virtual bank account number, recognized from one of
	// three narrative conventions.
	VBAN *string

	// Amount is the transfer amount rendered with exactly two decimals.
	Amount *string

	// ReferenceCode is the 12-digit concatenation of the two 6-digit
	// groups of a TRN reference.
	ReferenceCode *string

	// TraceNumber is the ACH trace number verbatim, leading zeros kept.
	TraceNumber *string

	// TransactionDate is the wire/ACH date normalized to YYYY-MM-DD.
	TransactionDate *string
}
