package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"todoscan/database"
	"todoscan/models"

	"github.com/go-chi/chi/v5"
)

// writeJSONError replies with a models.ErrorResponse body and the given status.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Message: message})
}

// scanFromURLParam resolves the {scan_id} URL parameter as a numeric ID
// first, then as a UUID.
func scanFromURLParam(r *http.Request) (models.Scan, error) {
	identifier := chi.URLParam(r, "scan_id")
	scanID, parseErr := strconv.ParseInt(identifier, 10, 64)
	if parseErr == nil {
		return database.GetScanByID(scanID)
	}
	return database.GetScanByUUID(identifier)
}
