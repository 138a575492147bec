package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/gorilla/mux"
)

// sendJSON writes data as a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes a JSON error body with a human-readable message
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError translates service-layer failures into client
// responses: validation errors become 400, missing records 404, anything
// else 500.
func sendServiceError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		sendError(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "record not found", http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

// pathID parses a numeric path variable
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}
