package response

import (
	"fmt"

	"recall-reconciliation-backend/internal/models"
	"recall-reconciliation-backend/internal/services/reconciliation"
)

// Disposition is the terminal recommendation for a processed case. Every
// case ends in exactly one of these.
type Disposition string

const (
	DispositionRejectRecall       Disposition = "reject_recall"
	DispositionNoMatch            Disposition = "no_match"
	DispositionNeedsInvestigation Disposition = "needs_investigation"
)

// LedgerResults renders the full ledger row for operator review. Formatting
// only; values are substituted verbatim.
func LedgerResults(ledger models.LedgerRecord) string {
	return fmt.Sprintf(`
**Ledger Query Results:**
Customer: %s
Record ID: %s
Posting Date: %s
Amount: %s
Receivables Account Number: %s
Sender Name: %s
Settlement Bank Account Number: %s
Settlement Bank Account Name: %s
Merchant: %s
Transaction ID: %s
Source ID: %s
Trace Number: %s
`,
		ledger.Customer,
		ledger.RecordID,
		ledger.PostingDate.Format("2006-01-02"),
		ledger.Amount,
		ledger.ReceivablesAccountNumber,
		ledger.SenderName,
		ledger.SettlementAccountNumber,
		ledger.SettlementAccountName,
		ledger.Merchant,
		ledger.TransactionID,
		ledger.SourceID,
		ledger.TraceNumber,
	)
}

func extractedBlock(rec models.ExtractedRecord) string {
	return fmt.Sprintf(`**Extracted Information:**
VBAN: **%s**
Amount: **%s**
TRN: **%s**
Trace Number: **%s**
Date: **%s**`,
		orNone(rec.VBAN),
		orNone(rec.Amount),
		orNone(rec.ReferenceCode),
		orNone(rec.TraceNumber),
		orNone(rec.TransactionDate),
	)
}

// RejectRecall renders the customer-facing reply for a case where the funds
// were located in the ledger: the recall is rejected and the account holder
// is pointed at the merchant, citing the ledger-confirmed customer
// reference.
func RejectRecall(rec models.ExtractedRecord, ledger models.LedgerRecord, outcome reconciliation.Outcome, permalink string) string {
	return fmt.Sprintf(`
Hi Team,

Confirming that we reject the attempt to recall and do not grant debit authorization. In this case, we can confirm that the funds were received, and reconciled to the intended merchant, though they have not yet been applied to an invoice. However, since the merchant has access to these funds, we would encourage the account holder to reach out to them directly if they have any questions or wish to request a refund.
In case it's helpful, here is the customer reference number that the account holder can use to identify their payment when reaching out to the merchant: %s

%s

%s
Best,
Operations Team

**Ledger Query Permalink:**
%s

%s
`,
		ledger.Customer,
		extractedBlock(rec),
		outcome.Analysis(),
		permalink,
		LedgerResults(ledger),
	)
}

// NoMatch renders the reply for a case whose ledger lookup returned no rows.
func NoMatch(rec models.ExtractedRecord, permalink string) string {
	return fmt.Sprintf(`
Hi Team,

No ledger match found, needs investigation.

%s

No results found in the ledger query.

**Ledger Query Permalink:**
%s
`,
		extractedBlock(rec),
		permalink,
	)
}

// NeedsInvestigation is the fixed comment for cases that could not be
// reconciled at all, typically because the ledger query itself failed.
func NeedsInvestigation(reason string) string {
	return "Needs investigation: " + reason
}

// OperatorSummary renders the internal document persisted alongside each
// case: the raw extracted fields plus the full ledger row when one exists.
func OperatorSummary(rec models.ExtractedRecord, ledger *models.LedgerRecord) string {
	ledgerBlock := ""
	if ledger != nil {
		ledgerBlock = LedgerResults(*ledger)
	}
	return fmt.Sprintf(`
Case Information:
VBAN: **%s**
Amount: **%s**
TRN: **%s**
Trace Number: **%s**
Date: **%s**

%s`,
		orNone(rec.VBAN),
		orNone(rec.Amount),
		orNone(rec.ReferenceCode),
		orNone(rec.TraceNumber),
		orNone(rec.TransactionDate),
		ledgerBlock,
	)
}

func orNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
