package models

import "time"

// LedgerRecord is one denormalized row returned by the ledger lookup query.
// Amount is kept as text on purpose: the reconciliation contract compares a
// truncated prefix of the textual form, and upstream stores are not
// consistent about numeric formatting.
type LedgerRecord struct {
	Customer                 string    `gorm:"column:customer"`
	RecordID                 string    `gorm:"column:record_id"`
	PostingDate              time.Time `gorm:"column:posting_date"`
	Amount                   string    `gorm:"column:amount"`
	ReceivablesAccountNumber string    `gorm:"column:receivables_account_number"`
	SenderName               string    `gorm:"column:sender_name"`
	SettlementAccountNumber  string    `gorm:"column:settlement_account_number"`
	SettlementAccountName    string    `gorm:"column:settlement_account_name"`
	Merchant                 string    `gorm:"column:merchant"`
	TransactionID            string    `gorm:"column:transaction_id"`
	SourceID                 string    `gorm:"column:source_id"`
	TraceNumber              string    `gorm:"column:trace_number"`
}
