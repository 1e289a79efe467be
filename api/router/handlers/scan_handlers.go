package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"todoscan/database"
	"todoscan/logger"
	"todoscan/models"
)

// GetScansHandler handles GET requests to list all stored scans.
func GetScansHandler(w http.ResponseWriter, r *http.Request) {
	scans, err := database.GetScans()
	if err != nil {
		logger.Error("GetScansHandler: Error fetching scans: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve scans")
		return
	}

	if scans == nil { // Ensure we return an empty array, not null
		scans = []models.Scan{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scans)
}

// GetScanHandler handles GET requests for a single scan by ID or UUID.
func GetScanHandler(w http.ResponseWriter, r *http.Request) {
	scan, err := scanFromURLParam(r)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeJSONError(w, http.StatusNotFound, "Scan not found")
		} else {
			logger.Error("GetScanHandler: Error fetching scan: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve scan")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scan)
}

// GetScanFindingsHandler handles GET requests to list the findings of one
// scan, in report order. Accepts an optional ?kind= query parameter.
func GetScanFindingsHandler(w http.ResponseWriter, r *http.Request) {
	scan, err := scanFromURLParam(r)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeJSONError(w, http.StatusNotFound, "Scan not found")
		} else {
			logger.Error("GetScanFindingsHandler: Error fetching scan: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve scan")
		}
		return
	}

	kind := r.URL.Query().Get("kind")
	findings, err := database.GetFindingsByScanID(scan.ID, kind)
	if err != nil {
		logger.Error("GetScanFindingsHandler: Error fetching findings for scan %d: %v", scan.ID, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve findings")
		return
	}

	if findings == nil {
		findings = []models.Finding{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(findings)
}

// GetScanKindsHandler handles GET requests for per-kind finding counts of
// one scan, in the kind order the scan first saw them.
func GetScanKindsHandler(w http.ResponseWriter, r *http.Request) {
	scan, err := scanFromURLParam(r)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeJSONError(w, http.StatusNotFound, "Scan not found")
		} else {
			logger.Error("GetScanKindsHandler: Error fetching scan: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve scan")
		}
		return
	}

	counts, err := database.GetKindCountsByScanID(scan.ID)
	if err != nil {
		logger.Error("GetScanKindsHandler: Error fetching kind counts for scan %d: %v", scan.ID, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve kind counts")
		return
	}

	if counts == nil {
		counts = []models.KindCount{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}

// DeleteScanHandler handles DELETE requests for a single scan. Findings are
// removed by the foreign key cascade.
func DeleteScanHandler(w http.ResponseWriter, r *http.Request) {
	scan, err := scanFromURLParam(r)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeJSONError(w, http.StatusNotFound, "Scan not found")
		} else {
			logger.Error("DeleteScanHandler: Error fetching scan: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve scan")
		}
		return
	}

	rowsAffected, err := database.DeleteScan(scan.ID)
	if err != nil {
		logger.Error("DeleteScanHandler: Error deleting scan %d: %v", scan.ID, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete scan")
		return
	}
	if rowsAffected == 0 {
		writeJSONError(w, http.StatusNotFound, "Scan not found")
		return
	}

	logger.Info("DeleteScanHandler: Deleted scan %d (uuid %s)", scan.ID, scan.UUID)
	w.WriteHeader(http.StatusNoContent)
}
