package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rfpscope/internal/matching"
	"rfpscope/internal/model"
	"rfpscope/internal/pipeline"
)

// ErrNotFound is returned when no analysis matches the given id.
var ErrNotFound = errors.New("analysis not found")

// AnalysisSummary is the listing row for a stored analysis.
type AnalysisSummary struct {
	ID              string
	DocumentID      string
	DocumentName    string
	CreatedAt       time.Time
	OverallCoverage float64
	ApprovedMatches int
	TotalMatches    int
}

// SaveAnalysis stores a full analysis context, replacing any previous
// analysis with the same id.
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, ac *pipeline.Context) error {
	if ac == nil {
		return fmt.Errorf("analysis context cannot be nil")
	}
	if ac.ID == "" {
		return fmt.Errorf("analysis id cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.deleteAnalysisTx(ctx, tx, ac.ID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO analyses (id, document_id, document_name, created_at, overall_coverage, approved_matches, total_matches)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ac.ID, ac.DocumentID, ac.DocumentName, ac.CreatedAt,
		ac.Coverage.Overall, ac.Coverage.Approved, ac.Coverage.Total)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	for _, req := range ac.Requirements {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO requirements (id, analysis_id, description, category, priority, confidence, source_page, method, verified)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			req.ID, ac.ID, req.Description, string(req.Category), string(req.Priority),
			req.Confidence, req.SourcePage, string(req.Method), req.Verified)
		if err != nil {
			return fmt.Errorf("failed to save requirement %s: %w", req.ID, err)
		}
	}

	for _, risk := range ac.Risks {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO risks (id, analysis_id, clause, category, severity, confidence, source_page, method, recommendation, acknowledged)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			risk.ID, ac.ID, risk.Clause, string(risk.Category), string(risk.Severity),
			risk.Confidence, risk.SourcePage, string(risk.Method), risk.Recommendation, risk.Acknowledged)
		if err != nil {
			return fmt.Errorf("failed to save risk %s: %w", risk.ID, err)
		}
	}

	for _, m := range ac.Matches {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO matches (analysis_id, requirement_id, requirement_text, requirement_category, entry_id, entry_name, entry_category, score, rationale, approved)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ac.ID, m.RequirementID, m.RequirementText, string(m.RequirementCategory),
			m.EntryID, m.EntryName, string(m.EntryCategory), m.Score, m.Rationale, m.Approved)
		if err != nil {
			return fmt.Errorf("failed to save match %s/%s: %w", m.RequirementID, m.EntryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analysis: %w", err)
	}
	return nil
}

// GetAnalysis loads a stored analysis context by id.
func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*pipeline.Context, error) {
	if id == "" {
		return nil, fmt.Errorf("analysis id cannot be empty")
	}

	ac := &pipeline.Context{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT document_id, document_name, created_at, overall_coverage, approved_matches, total_matches
		 FROM analyses WHERE id = ?`, id).
		Scan(&ac.DocumentID, &ac.DocumentName, &ac.CreatedAt,
			&ac.Coverage.Overall, &ac.Coverage.Approved, &ac.Coverage.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	if ac.Requirements, err = s.getRequirements(ctx, id); err != nil {
		return nil, err
	}
	if ac.Risks, err = s.getRisks(ctx, id); err != nil {
		return nil, err
	}
	if ac.Matches, err = s.getMatches(ctx, id); err != nil {
		return nil, err
	}
	ac.Coverage.ByCategory = matching.CoverageByCategory(ac.Matches)
	return ac, nil
}

// ListAnalyses returns summaries of all stored analyses, newest first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context) ([]AnalysisSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, document_name, created_at, overall_coverage, approved_matches, total_matches
		 FROM analyses ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []AnalysisSummary
	for rows.Next() {
		var sum AnalysisSummary
		if err := rows.Scan(&sum.ID, &sum.DocumentID, &sum.DocumentName, &sum.CreatedAt,
			&sum.OverallCoverage, &sum.ApprovedMatches, &sum.TotalMatches); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteAnalysis removes a stored analysis and all of its findings.
func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.deleteAnalysisTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) deleteAnalysisTx(ctx context.Context, tx *sql.Tx, id string) error {
	for _, table := range []string{"requirements", "risks", "matches"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE analysis_id = ?", table), id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

func (s *SQLiteStore) getRequirements(ctx context.Context, analysisID string) ([]model.Requirement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, category, priority, confidence, source_page, method, verified
		 FROM requirements WHERE analysis_id = ? ORDER BY rowid`, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requirements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reqs []model.Requirement
	for rows.Next() {
		var req model.Requirement
		var category, priority, method string
		if err := rows.Scan(&req.ID, &req.Description, &category, &priority,
			&req.Confidence, &req.SourcePage, &method, &req.Verified); err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}
		req.Category = model.RequirementCategory(category)
		req.Priority = model.Priority(priority)
		req.Method = model.DetectionMethod(method)
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (s *SQLiteStore) getRisks(ctx context.Context, analysisID string) ([]model.Risk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, clause, category, severity, confidence, source_page, method, recommendation, acknowledged
		 FROM risks WHERE analysis_id = ? ORDER BY rowid`, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to load risks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var risks []model.Risk
	for rows.Next() {
		var risk model.Risk
		var category, severity, method string
		if err := rows.Scan(&risk.ID, &risk.Clause, &category, &severity,
			&risk.Confidence, &risk.SourcePage, &method, &risk.Recommendation, &risk.Acknowledged); err != nil {
			return nil, fmt.Errorf("failed to scan risk: %w", err)
		}
		risk.Category = model.RiskCategory(category)
		risk.Severity = model.Severity(severity)
		risk.Method = model.DetectionMethod(method)
		risks = append(risks, risk)
	}
	return risks, rows.Err()
}

func (s *SQLiteStore) getMatches(ctx context.Context, analysisID string) (model.MatchResults, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT requirement_id, requirement_text, requirement_category, entry_id, entry_name, entry_category, score, rationale, approved
		 FROM matches WHERE analysis_id = ? ORDER BY score DESC, entry_name`, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches model.MatchResults
	for rows.Next() {
		var m model.MatchResult
		var reqCategory, entryCategory string
		if err := rows.Scan(&m.RequirementID, &m.RequirementText, &reqCategory,
			&m.EntryID, &m.EntryName, &entryCategory, &m.Score, &m.Rationale, &m.Approved); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.RequirementCategory = model.RequirementCategory(reqCategory)
		m.EntryCategory = model.RequirementCategory(entryCategory)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
