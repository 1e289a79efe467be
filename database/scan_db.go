package database

import (
	"database/sql"
	"errors"
	"fmt"
	"todoscan/logger"
	"todoscan/models"
)

// CreateScan inserts a new scan row and returns its ID. The scan is created
// open-ended; CompleteScan fills in the totals once the walk finishes.
func CreateScan(scanUUID, rootPath string) (int64, error) {
	logger.Info("Creating scan record: uuid=%s root=%s", scanUUID, rootPath)
	stmt, err := DB.Prepare(`
		INSERT INTO scans (uuid, root_path, started_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		logger.Error("Error preparing create scan statement: %v", err)
		return 0, fmt.Errorf("preparing create scan statement: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(scanUUID, rootPath)
	if err != nil {
		return 0, fmt.Errorf("executing create scan statement: %w", err)
	}
	return result.LastInsertId()
}

// CompleteScan marks a scan as finished and records its totals.
func CompleteScan(scanID int64, filesScanned, totalFindings int64) error {
	stmt, err := DB.Prepare(`
		UPDATE scans
		SET completed_at = CURRENT_TIMESTAMP, files_scanned = ?, total_findings = ?
		WHERE id = ?
	`)
	if err != nil {
		logger.Error("Error preparing complete scan statement: %v", err)
		return fmt.Errorf("preparing complete scan statement: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(filesScanned, totalFindings, scanID); err != nil {
		return fmt.Errorf("completing scan %d: %w", scanID, err)
	}
	return nil
}

// GetScans retrieves all stored scans, most recent first.
func GetScans() ([]models.Scan, error) {
	rows, err := DB.Query(`
		SELECT id, uuid, root_path, started_at, completed_at, files_scanned, total_findings
		FROM scans
		ORDER BY started_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var scans []models.Scan
	for rows.Next() {
		var s models.Scan
		if err := rows.Scan(&s.ID, &s.UUID, &s.RootPath, &s.StartedAt, &s.CompletedAt, &s.FilesScanned, &s.TotalFindings); err != nil {
			return nil, fmt.Errorf("scanning scan row: %w", err)
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// GetScanByID retrieves a single scan by its numeric ID.
func GetScanByID(scanID int64) (models.Scan, error) {
	var s models.Scan
	err := DB.QueryRow(`
		SELECT id, uuid, root_path, started_at, completed_at, files_scanned, total_findings
		FROM scans
		WHERE id = ?
	`, scanID).Scan(&s.ID, &s.UUID, &s.RootPath, &s.StartedAt, &s.CompletedAt, &s.FilesScanned, &s.TotalFindings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, fmt.Errorf("scan with ID %d not found", scanID)
		}
		return s, fmt.Errorf("querying scan %d: %w", scanID, err)
	}
	return s, nil
}

// GetScanByUUID retrieves a single scan by its UUID.
func GetScanByUUID(scanUUID string) (models.Scan, error) {
	var s models.Scan
	err := DB.QueryRow(`
		SELECT id, uuid, root_path, started_at, completed_at, files_scanned, total_findings
		FROM scans
		WHERE uuid = ?
	`, scanUUID).Scan(&s.ID, &s.UUID, &s.RootPath, &s.StartedAt, &s.CompletedAt, &s.FilesScanned, &s.TotalFindings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, fmt.Errorf("scan with UUID %s not found", scanUUID)
		}
		return s, fmt.Errorf("querying scan %s: %w", scanUUID, err)
	}
	return s, nil
}

// DeleteScan removes a scan and, via the foreign key cascade, its findings.
func DeleteScan(scanID int64) (int64, error) {
	result, err := DB.Exec("DELETE FROM scans WHERE id = ?", scanID)
	if err != nil {
		return 0, fmt.Errorf("deleting scan %d: %w", scanID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for scan %d delete: %w", scanID, err)
	}
	return rowsAffected, nil
}
