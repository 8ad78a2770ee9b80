package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recipebox/recipebox-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON decodes a request body capped at 1MB into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		switch {
		case err.Error() == "http: request body too large":
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		case errors.Is(err, model.ErrCaloriesNotNumeric):
			writeJSON(w, http.StatusBadRequest, errorResponse(model.ErrCaloriesNotNumeric.Error()))
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		}
		return false
	}
	return true
}
