package query

import (
	"fmt"
	"strings"

	"recall-reconciliation-backend/internal/models"
)

// FilterKind selects how a filter value is matched against its column.
type FilterKind int

const (
	// Exact compares the column to the value literally.
	Exact FilterKind = iota
	// Substring matches the value anywhere inside the column's textual form.
	Substring
	// DateEquals compares the column to the value as a calendar date.
	DateEquals
)

// Filter is one WHERE-clause predicate of the ledger lookup.
type Filter struct {
	Column string
	Kind   FilterKind
	Value  string
}

func (f Filter) render() string {
	v := strings.ReplaceAll(f.Value, "'", "''")
	switch f.Kind {
	case Substring:
		return fmt.Sprintf("%s like '%%%s%%'", f.Column, v)
	case DateEquals:
		return fmt.Sprintf("%s = date'%s'", f.Column, v)
	default:
		return fmt.Sprintf("%s = '%s'", f.Column, v)
	}
}

// ledgerSelect joins the five record stores behind one incoming transfer:
// the raw source transfer, the incoming-transaction record, the funds
// movement, the virtual account it landed on and that account's allocation,
// plus the settlement bank account identity.
const ledgerSelect = `select
  valloc.external_id as customer,
  fm.id as record_id,
  fm.arrived_at as posting_date,
  fm.amount as amount,
  va.account_number as receivables_account_number,
  fm.sender_name as sender_name,
  sba.account_number as settlement_account_number,
  le.legal_name as settlement_account_name,
  va.merchant as merchant,
  itx.id as transaction_id,
  itx.source_id as source_id,
  src.originating_dfi_id || lpad(src.sequence_number::text, 7, '0') as trace_number
from source_transfer_records src
  right join incoming_transaction_records itx on itx.source_id = src.id
  right join funds_movement_records fm on fm.incoming_transaction_id = itx.id
  left join virtual_account_records va on fm.external_id = va.id
  left join virtual_account_allocation_records valloc on va.allocation_id = valloc.id
  left join settlement_bank_accounts sba on fm.settlement_bank_account_id = sba.id
  left join legal_entities le on sba.legal_entity_id = le.id
where
  `

// BuildLedgerLookup renders the ledger lookup for one extracted record. The
// VBAN filters exactly, the amount as a substring (ledger amount formatting
// varies), the date by calendar-date equality. Absent fields render as the
// literal "None" rather than failing here; an impossible filter yields an
// empty result set and the reconciliation stage reports that.
func BuildLedgerLookup(rec models.ExtractedRecord) string {
	filters := []Filter{
		{Column: "va.account_number", Kind: Exact, Value: orNone(rec.VBAN)},
		{Column: "fm.amount", Kind: Substring, Value: orNone(rec.Amount)},
		{Column: "fm.arrived_at", Kind: DateEquals, Value: orNone(rec.TransactionDate)},
	}

	rendered := make([]string, len(filters))
	for i, f := range filters {
		rendered[i] = f.render()
	}
	return ledgerSelect + strings.Join(rendered, "\n  and ")
}

func orNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
