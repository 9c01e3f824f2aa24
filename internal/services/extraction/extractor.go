package extraction

import (
	"regexp"
	"strings"
	"time"

	"recall-reconciliation-backend/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// VBAN conventions, one alternation. Group 1 covers the BNF form, group 2 the
// PR WPIC form; the dash-prefix form captures no group, so the whole match is
// used. When more than one branch could match adjoining text, the group
// priority (1, then 2, then whole match) decides — a known ambiguity kept
// for parity with existing case handling.
var vbanPattern = regexp.MustCompile(`4063-\d+|BNF:/(\d+)|PR WPIC:\s*(\d+)`)

// Amount conventions, most specific first.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Incoming Wire Amount:\s*USD\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`AMT:([\d,]+\.\d{2})\s*CUR:USD`),
	regexp.MustCompile(`AMT:([\d,]+\.\d{2})`),
	regexp.MustCompile(`Credit amount:\s*([\d,]+\.\d{2})`),
}

var (
	referenceCodePattern = regexp.MustCompile(`TRN:\s*(\d{6})-(\d{6})`)
	traceNumberPattern   = regexp.MustCompile(`Trace number:\s*(\d+)`)
)

// Date conventions carry their own parse layout; the SND form uses 2-digit
// years.
var dateConventions = []struct {
	pattern *regexp.Regexp
	layout  string
}{
	{regexp.MustCompile(`Incoming Wire Date:\s*(\d{1,2}/\d{1,2}/\d{4})`), "1/2/2006"},
	{regexp.MustCompile(`Effective date:\s*(\d{1,2}/\d{1,2}/\d{4})`), "1/2/2006"},
	{regexp.MustCompile(`SND DATE:\s*(\d{2}/\d{2}/\d{2})`), "01/02/06"},
}

// Extractor pulls structured fields out of raw recall narratives. Extraction
// misses are never errors: a field whose conventions all fail to match is
// simply absent from the result.
type Extractor struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Extractor {
	return &Extractor{log: log}
}

// VBAN returns the virtual bank account number, or nil if no convention
// matches.
func (e *Extractor) VBAN(text string) *string {
	m := vbanPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	switch {
	case m[1] != "":
		return &m[1]
	case m[2] != "":
		return &m[2]
	default:
		return &m[0]
	}
}

// Amount returns the transfer amount, or nil if no convention matches.
// Thousands separators are stripped before parsing.
func (e *Extractor) Amount(text string) *decimal.Decimal {
	for _, p := range amountPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		return &amount
	}
	return nil
}

// ReferenceCode returns the two 6-digit TRN groups concatenated, or nil.
func (e *Extractor) ReferenceCode(text string) *string {
	m := referenceCodePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	code := m[1] + m[2]
	return &code
}

// TraceNumber returns the trace number digits verbatim, or nil.
func (e *Extractor) TraceNumber(text string) *string {
	m := traceNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &m[1]
}

// TransactionDate returns the transaction date normalized to YYYY-MM-DD, or
// nil. A convention that matches but fails to parse is logged and the next
// convention is tried.
func (e *Extractor) TransactionDate(text string) *string {
	for _, c := range dateConventions {
		m := c.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		t, err := time.Parse(c.layout, m[1])
		if err != nil {
			e.log.Warn("unparsable date in narrative",
				zap.String("date", m[1]),
				zap.Error(err))
			continue
		}
		iso := t.Format("2006-01-02")
		return &iso
	}
	return nil
}

// ExtractNarrative runs all five extractors over one narrative and assembles
// the result. The amount is rendered to exactly two decimals here; no
// cross-field validation happens, a partially filled record is expected.
func (e *Extractor) ExtractNarrative(text string) models.ExtractedRecord {
	rec := models.ExtractedRecord{
		VBAN:            e.VBAN(text),
		ReferenceCode:   e.ReferenceCode(text),
		TraceNumber:     e.TraceNumber(text),
		TransactionDate: e.TransactionDate(text),
	}
	if amount := e.Amount(text); amount != nil {
		formatted := amount.StringFixed(2)
		rec.Amount = &formatted
	}
	return rec
}
