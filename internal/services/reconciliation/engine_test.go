package reconciliation

import (
	"testing"
	"time"

	"recall-reconciliation-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func fullyMatchedFixture() (models.ExtractedRecord, models.LedgerRecord) {
	rec := models.ExtractedRecord{
		VBAN:            strptr("998877"),
		Amount:          strptr("1000.00"),
		TraceNumber:     strptr("555111"),
		TransactionDate: strptr("2024-03-04"),
	}
	ledger := models.LedgerRecord{
		Customer:                 "cus_ref_001",
		ReceivablesAccountNumber: "998877",
		Amount:                   "1000.50",
		PostingDate:              time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		TraceNumber:              "555111",
	}
	return rec, ledger
}

func TestReconcileEmptyResultSet(t *testing.T) {
	rec, _ := fullyMatchedFixture()

	outcome := Reconcile(rec, nil)

	assert.False(t, outcome.LedgerMatch)
	assert.False(t, outcome.AllMatched())
	assert.Empty(t, outcome.Statements)
	assert.Equal(t, "No ledger match found.", outcome.Analysis())
}

func TestReconcileAllFieldsMatch(t *testing.T) {
	rec, ledger := fullyMatchedFixture()

	outcome := Reconcile(rec, &ledger)

	assert.True(t, outcome.LedgerMatch)
	require.Len(t, outcome.Statements, 4)
	for _, s := range outcome.Statements {
		assert.True(t, s.Matched, "field %s should match", s.Field)
	}
	assert.True(t, outcome.AllMatched())

	// Comparison order is fixed.
	fields := []string{"vban", "amount", "date", "trace_number"}
	for i, s := range outcome.Statements {
		assert.Equal(t, fields[i], s.Field)
	}
}

func TestReconcileAmountPrefix(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		ledger    string
		matched   bool
	}{
		{"cent drift still matches", "1234.56", "1234.99", true},
		{"integer drift mismatches", "1234.56", "1235.00", false},
		{"only first four digits compared", "123456.00", "123499.99", true},
		{"short amounts compare whole integer part", "42.00", "42.99", true},
		{"short against long mismatches", "42.00", "4200.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ledger := fullyMatchedFixture()
			ledger.Amount = tt.ledger
			rec, _ := fullyMatchedFixture()
			rec.Amount = strptr(tt.extracted)

			outcome := Reconcile(rec, &ledger)
			require.Len(t, outcome.Statements, 4)
			assert.Equal(t, tt.matched, outcome.Statements[1].Matched)
		})
	}
}

func TestReconcileMismatchesAreIndependent(t *testing.T) {
	rec, ledger := fullyMatchedFixture()
	ledger.ReceivablesAccountNumber = "000000"

	outcome := Reconcile(rec, &ledger)

	require.Len(t, outcome.Statements, 4, "a mismatch must not short-circuit later comparisons")
	assert.False(t, outcome.Statements[0].Matched)
	assert.True(t, outcome.Statements[1].Matched)
	assert.True(t, outcome.Statements[2].Matched)
	assert.True(t, outcome.Statements[3].Matched)
	assert.False(t, outcome.AllMatched())
}

func TestReconcileMismatchEmbedsBothValues(t *testing.T) {
	rec, ledger := fullyMatchedFixture()
	rec.TransactionDate = strptr("2024-03-05")

	outcome := Reconcile(rec, &ledger)

	s := outcome.Statements[2]
	assert.False(t, s.Matched)
	assert.Contains(t, s.Text, "2024-03-05")
	assert.Contains(t, s.Text, "2024-03-04")
}

func TestReconcileAbsentFields(t *testing.T) {
	_, ledger := fullyMatchedFixture()

	outcome := Reconcile(models.ExtractedRecord{}, &ledger)

	require.Len(t, outcome.Statements, 4)
	for _, s := range outcome.Statements {
		assert.False(t, s.Matched)
	}
	assert.Contains(t, outcome.Statements[2].Text, "None")
	assert.Contains(t, outcome.Statements[3].Text, "None")
}

func TestReconcileVBANTrimsWhitespace(t *testing.T) {
	rec, ledger := fullyMatchedFixture()
	rec.VBAN = strptr("  998877 ")
	ledger.ReceivablesAccountNumber = "998877  "

	outcome := Reconcile(rec, &ledger)

	assert.True(t, outcome.Statements[0].Matched)
}

func TestAnalysisJoinsStatements(t *testing.T) {
	rec, ledger := fullyMatchedFixture()

	analysis := Reconcile(rec, &ledger).Analysis()

	assert.Contains(t, analysis, "**Analysis:**")
	assert.Contains(t, analysis, "VBAN matches the receivables account number.")
	assert.Contains(t, analysis, "First 4 digits of the amount match.")
	assert.Contains(t, analysis, "Date matches the posting date.")
	assert.Contains(t, analysis, "Trace number matches.")
}
