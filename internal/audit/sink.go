package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// Column layout of the audit file. Front Link, Token_insert and Description
// are reserved and left empty for now.
var headers = []string{
	"Assignee", "Date", "Case Id", "Front Link", "Ledger Query",
	"Details", "Token_insert", "Analysis", "Response", "Description",
}

// Row is one processed case in the audit trail.
type Row struct {
	Assignee string
	CaseID   string
	Query    string
	Details  string
	Analysis string
	Response string
}

// Sink appends processed cases to an on-disk CSV file. The header row is
// written once, when the file does not exist yet. Appends are serialized so
// concurrent case processing cannot interleave rows.
type Sink struct {
	path string
	mu   sync.Mutex
}

func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Append writes one row, creating the file with its header first if needed.
func (s *Sink) Append(row Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(headers); err != nil {
			return fmt.Errorf("writing audit header: %w", err)
		}
	}

	record := []string{
		row.Assignee,
		time.Now().Format("2006-01-02"),
		row.CaseID,
		"", // Front Link
		row.Query,
		row.Details,
		"", // Token_insert
		row.Analysis,
		row.Response,
		"", // Description
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("writing audit row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing audit file: %w", err)
	}
	return nil
}
