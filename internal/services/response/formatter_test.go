package response

import (
	"testing"
	"time"

	"recall-reconciliation-backend/internal/models"
	"recall-reconciliation-backend/internal/services/reconciliation"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func testFixture() (models.ExtractedRecord, models.LedgerRecord) {
	rec := models.ExtractedRecord{
		VBAN:            strptr("998877"),
		Amount:          strptr("1000.00"),
		ReferenceCode:   strptr("123456654321"),
		TraceNumber:     strptr("555111"),
		TransactionDate: strptr("2024-03-04"),
	}
	ledger := models.LedgerRecord{
		Customer:                 "cus_ref_001",
		RecordID:                 "fm_01",
		PostingDate:              time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Amount:                   "1000.50",
		ReceivablesAccountNumber: "998877",
		SenderName:               "ACME CORP",
		SettlementAccountNumber:  "40631234",
		SettlementAccountName:    "Platform Inc",
		Merchant:                 "merchant_42",
		TransactionID:            "itx_9",
		SourceID:                 "src_3",
		TraceNumber:              "555111",
	}
	return rec, ledger
}

func TestRejectRecall(t *testing.T) {
	rec, ledger := testFixture()
	outcome := reconciliation.Reconcile(rec, &ledger)

	doc := RejectRecall(rec, ledger, outcome, "https://ledger.example/queries/abc")

	assert.Contains(t, doc, "we reject the attempt to recall")
	assert.Contains(t, doc, "cus_ref_001", "must cite the ledger customer reference")
	assert.Contains(t, doc, "VBAN: **998877**")
	assert.Contains(t, doc, "Amount: **1000.00**")
	assert.Contains(t, doc, "**Analysis:**")
	assert.Contains(t, doc, "https://ledger.example/queries/abc")
	assert.Contains(t, doc, "Sender Name: ACME CORP")
	assert.Contains(t, doc, "Posting Date: 2024-03-04")
}

func TestNoMatch(t *testing.T) {
	rec, _ := testFixture()

	doc := NoMatch(rec, "https://ledger.example/queries/abc")

	assert.Contains(t, doc, "No ledger match found, needs investigation.")
	assert.Contains(t, doc, "No results found in the ledger query.")
	assert.Contains(t, doc, "VBAN: **998877**")
	assert.Contains(t, doc, "https://ledger.example/queries/abc")
	assert.NotContains(t, doc, "reject the attempt to recall")
}

func TestAbsentFieldsRenderAsNone(t *testing.T) {
	doc := NoMatch(models.ExtractedRecord{}, "link")

	assert.Contains(t, doc, "VBAN: **None**")
	assert.Contains(t, doc, "Amount: **None**")
	assert.Contains(t, doc, "TRN: **None**")
	assert.Contains(t, doc, "Trace Number: **None**")
	assert.Contains(t, doc, "Date: **None**")
}

func TestNeedsInvestigation(t *testing.T) {
	doc := NeedsInvestigation("Error executing ledger query.")
	assert.Equal(t, "Needs investigation: Error executing ledger query.", doc)
}

func TestOperatorSummary(t *testing.T) {
	rec, ledger := testFixture()

	t.Run("with ledger row", func(t *testing.T) {
		doc := OperatorSummary(rec, &ledger)
		assert.Contains(t, doc, "Case Information:")
		assert.Contains(t, doc, "**Ledger Query Results:**")
		assert.Contains(t, doc, "Merchant: merchant_42")
	})

	t.Run("without ledger row", func(t *testing.T) {
		doc := OperatorSummary(rec, nil)
		assert.Contains(t, doc, "Case Information:")
		assert.NotContains(t, doc, "**Ledger Query Results:**")
	})
}
