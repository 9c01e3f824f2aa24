package reconciliation

import (
	"fmt"
	"strings"

	"recall-reconciliation-backend/internal/models"
)

// Statement is one per-field comparison result. Mismatches carry both
// compared values so the audit trail shows exactly what disagreed.
type Statement struct {
	Field     string `json:"field"`
	Matched   bool   `json:"matched"`
	Extracted string `json:"extracted"`
	Ledger    string `json:"ledger"`
	Text      string `json:"text"`
}

// Outcome is the full reconciliation result for one case. Statements keep
// the comparison order; LedgerMatch is false only when the lookup returned
// no rows at all.
type Outcome struct {
	LedgerMatch bool        `json:"ledger_match"`
	Statements  []Statement `json:"statements"`
}

// AllMatched reports whether every field comparison agreed. False when no
// ledger row was found.
func (o Outcome) AllMatched() bool {
	if !o.LedgerMatch {
		return false
	}
	for _, s := range o.Statements {
		if !s.Matched {
			return false
		}
	}
	return true
}

// Analysis renders the outcome as one operator-facing paragraph.
func (o Outcome) Analysis() string {
	if !o.LedgerMatch {
		return "No ledger match found."
	}
	parts := make([]string, len(o.Statements))
	for i, s := range o.Statements {
		parts[i] = s.Text
	}
	return "**Analysis:** " + strings.Join(parts, " ") + "\n"
}

// Reconcile compares an extracted record against the ledger row, field by
// field. A nil ledger row is the valid empty-result outcome. The four
// comparisons are independent: one mismatch never short-circuits the rest,
// and no field outranks another.
func Reconcile(rec models.ExtractedRecord, ledger *models.LedgerRecord) Outcome {
	if ledger == nil {
		return Outcome{LedgerMatch: false}
	}

	statements := []Statement{
		compareVBAN(rec.VBAN, ledger.ReceivablesAccountNumber),
		compareAmount(rec.Amount, ledger.Amount),
		compareDate(rec.TransactionDate, ledger.PostingDate.Format("2006-01-02")),
		compareTrace(rec.TraceNumber, ledger.TraceNumber),
	}
	return Outcome{LedgerMatch: true, Statements: statements}
}

func compareVBAN(extracted *string, ledger string) Statement {
	ex := ""
	if extracted != nil {
		ex = strings.TrimSpace(*extracted)
	}
	led := strings.TrimSpace(ledger)
	s := Statement{Field: "vban", Extracted: ex, Ledger: led, Matched: ex == led}
	if s.Matched {
		s.Text = "VBAN matches the receivables account number."
	} else {
		s.Text = fmt.Sprintf("VBAN does not match the receivables account number. Extracted: %s, Ledger: %s.", ex, led)
	}
	return s
}

// compareAmount deliberately compares only the first four characters of the
// integer portion of each side. Cent-level drift between the narrative and
// the ledger is common and not significant for recall handling.
func compareAmount(extracted *string, ledger string) Statement {
	ex := ""
	if extracted != nil {
		ex = integerPrefix(*extracted)
	}
	led := integerPrefix(ledger)
	s := Statement{Field: "amount", Extracted: ex, Ledger: led, Matched: ex == led}
	if s.Matched {
		s.Text = "First 4 digits of the amount match."
	} else {
		s.Text = fmt.Sprintf("First 4 digits of the amount do not match. Extracted: %s, Ledger: %s.", ex, led)
	}
	return s
}

func compareDate(extracted *string, ledger string) Statement {
	ex := "None"
	if extracted != nil {
		ex = *extracted
	}
	s := Statement{Field: "date", Extracted: ex, Ledger: ledger, Matched: ex == ledger}
	if s.Matched {
		s.Text = "Date matches the posting date."
	} else {
		s.Text = fmt.Sprintf("Date does not match the posting date. Extracted: %s, Ledger: %s.", ex, ledger)
	}
	return s
}

func compareTrace(extracted *string, ledger string) Statement {
	ex := "None"
	if extracted != nil {
		ex = *extracted
	}
	s := Statement{Field: "trace_number", Extracted: ex, Ledger: ledger, Matched: ex == ledger}
	if s.Matched {
		s.Text = "Trace number matches."
	} else {
		s.Text = fmt.Sprintf("Trace number does not match. Extracted: %s, Ledger: %s.", ex, ledger)
	}
	return s
}

// integerPrefix returns the first four characters of the text before the
// decimal point.
func integerPrefix(amount string) string {
	intPart, _, _ := strings.Cut(amount, ".")
	if len(intPart) > 4 {
		intPart = intPart[:4]
	}
	return intPart
}
