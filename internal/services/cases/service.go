package cases

import (
	"encoding/json"
	"time"

	"recall-reconciliation-backend/internal/audit"
	"recall-reconciliation-backend/internal/models"
	"recall-reconciliation-backend/internal/repository"
	"recall-reconciliation-backend/internal/services/extraction"
	"recall-reconciliation-backend/internal/services/query"
	"recall-reconciliation-backend/internal/services/reconciliation"
	"recall-reconciliation-backend/internal/services/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service runs the full pipeline for one recall case: extraction, ledger
// lookup, reconciliation, response rendering, then persistence and audit.
type Service struct {
	extractor  *extraction.Extractor
	ledgerRepo *repository.LedgerRepository
	caseRepo   *repository.CaseRepository
	sink       *audit.Sink
	assignee   string
	log        *zap.Logger
}

func NewService(
	extractor *extraction.Extractor,
	ledgerRepo *repository.LedgerRepository,
	caseRepo *repository.CaseRepository,
	sink *audit.Sink,
	assignee string,
	log *zap.Logger,
) *Service {
	return &Service{
		extractor:  extractor,
		ledgerRepo: ledgerRepo,
		caseRepo:   caseRepo,
		sink:       sink,
		assignee:   assignee,
		log:        log,
	}
}

// Result is everything produced for one processed case. Response is the
// text to post back to the ticket; Details is the internal operator
// document.
type Result struct {
	RecordID    uuid.UUID              `json:"record_id"`
	CaseID      string                 `json:"case_id"`
	Extracted   models.ExtractedRecord `json:"extracted"`
	Query       string                 `json:"query"`
	Permalink   string                 `json:"permalink"`
	Ledger      *models.LedgerRecord   `json:"ledger,omitempty"`
	Outcome     reconciliation.Outcome `json:"outcome"`
	Analysis    string                 `json:"analysis"`
	Response    string                 `json:"response"`
	Details     string                 `json:"details"`
	Disposition response.Disposition   `json:"disposition"`
}

// Process takes one narrative through the pipeline. A failed ledger query
// does not abort the case: it routes to the needs-investigation disposition
// with no reconciliation, so every case ends with a terminal response.
func (s *Service) Process(caseID, narrative string) *Result {
	rec := s.extractor.ExtractNarrative(narrative)
	ledgerQuery := query.BuildLedgerLookup(rec)

	result := &Result{
		RecordID:  uuid.New(),
		CaseID:    caseID,
		Extracted: rec,
		Query:     ledgerQuery,
	}

	rows, permalink, err := s.ledgerRepo.Execute(ledgerQuery)
	if err != nil {
		s.log.Error("ledger query failed", zap.String("case_id", caseID), zap.Error(err))
		result.Disposition = response.DispositionNeedsInvestigation
		result.Analysis = "Needs Investigation"
		result.Response = response.NeedsInvestigation("Error executing ledger query.")
		result.Details = response.OperatorSummary(rec, nil)
		s.persist(result, narrative)
		return result
	}
	result.Permalink = permalink

	if len(rows) == 0 {
		result.Outcome = reconciliation.Reconcile(rec, nil)
		result.Disposition = response.DispositionNoMatch
		result.Analysis = result.Outcome.Analysis()
		result.Response = response.NoMatch(rec, permalink)
		result.Details = response.OperatorSummary(rec, nil)
		s.persist(result, narrative)
		return result
	}

	// Multiple rows can come back when the substring amount filter is
	// loose; the first row wins.
	ledger := rows[0]
	result.Ledger = &ledger
	result.Outcome = reconciliation.Reconcile(rec, &ledger)
	result.Disposition = response.DispositionRejectRecall
	result.Analysis = result.Outcome.Analysis()
	result.Response = response.RejectRecall(rec, ledger, result.Outcome, permalink)
	result.Details = response.OperatorSummary(rec, &ledger)
	s.persist(result, narrative)
	return result
}

// persist stores the case record and appends the audit row. Both are
// best-effort: a persistence failure is logged but never blocks the
// disposition already produced for the case.
func (s *Service) persist(result *Result, narrative string) {
	statements, _ := json.Marshal(result.Outcome.Statements)

	record := &models.CaseRecord{
		ID:          result.RecordID,
		CaseID:      result.CaseID,
		Assignee:    s.assignee,
		Disposition: string(result.Disposition),
		Narrative:   narrative,
		Query:       result.Query,
		Permalink:   result.Permalink,
		Analysis:    result.Analysis,
		Response:    result.Response,
		Statements:  statements,
		CreatedAt:   time.Now(),
	}
	if err := s.caseRepo.Create(record); err != nil {
		s.log.Error("persisting case record failed",
			zap.String("case_id", result.CaseID), zap.Error(err))
	}

	row := audit.Row{
		Assignee: s.assignee,
		CaseID:   result.CaseID,
		Query:    result.Query,
		Details:  result.Details,
		Analysis: result.Analysis,
		Response: result.Response,
	}
	if err := s.sink.Append(row); err != nil {
		s.log.Error("appending audit row failed",
			zap.String("case_id", result.CaseID), zap.Error(err))
	}
}

func (s *Service) CaseRepo() *repository.CaseRepository {
	return s.caseRepo
}
