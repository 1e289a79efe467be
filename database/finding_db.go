package database

import (
	"fmt"
	"todoscan/logger"
	"todoscan/models"
)

// CreateFindings inserts all findings for one scan in a single transaction.
// Callers supply findings in report order; the (kind_rank, id) ordering used
// on read-back then reproduces that order exactly.
func CreateFindings(findings []models.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	logger.Info("Inserting %d findings for scan %d", len(findings), findings[0].ScanID)

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("beginning findings transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO findings (scan_id, kind, kind_rank, file_path, start_line, comment_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert finding statement: %w", err)
	}
	defer stmt.Close()

	for _, f := range findings {
		if _, err := stmt.Exec(f.ScanID, f.Kind, f.KindRank, f.FilePath, f.StartLine, f.CommentText); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting finding (kind %q, file %s): %w", f.Kind, f.FilePath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing findings transaction: %w", err)
	}
	return nil
}

// GetFindingsByScanID retrieves the findings of one scan in report order.
// Pass a non-empty kind to restrict the result to that kind.
func GetFindingsByScanID(scanID int64, kind string) ([]models.Finding, error) {
	query := `
		SELECT id, scan_id, kind, kind_rank, file_path, start_line, comment_text, created_at
		FROM findings
		WHERE scan_id = ?
	`
	args := []interface{}{scanID}
	if kind != "" {
		query += " AND kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY kind_rank ASC, id ASC"

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying findings for scan %d: %w", scanID, err)
	}
	defer rows.Close()

	var findings []models.Finding
	for rows.Next() {
		var f models.Finding
		if err := rows.Scan(&f.ID, &f.ScanID, &f.Kind, &f.KindRank, &f.FilePath, &f.StartLine, &f.CommentText, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning finding row for scan %d: %w", scanID, err)
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}

// GetKindCountsByScanID retrieves per-kind finding counts for one scan, in
// the kind order the scan first saw them.
func GetKindCountsByScanID(scanID int64) ([]models.KindCount, error) {
	rows, err := DB.Query(`
		SELECT kind, kind_rank, COUNT(*)
		FROM findings
		WHERE scan_id = ?
		GROUP BY kind, kind_rank
		ORDER BY kind_rank ASC
	`, scanID)
	if err != nil {
		return nil, fmt.Errorf("querying kind counts for scan %d: %w", scanID, err)
	}
	defer rows.Close()

	var counts []models.KindCount
	for rows.Next() {
		var kc models.KindCount
		if err := rows.Scan(&kc.Kind, &kc.KindRank, &kc.Count); err != nil {
			return nil, fmt.Errorf("scanning kind count row for scan %d: %w", scanID, err)
		}
		counts = append(counts, kc)
	}
	return counts, rows.Err()
}
