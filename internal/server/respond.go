// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"

	"github.com/goccy/go-json"
)

// WriteJSONError sends {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON encodes payload as the response body.
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	writeRaw(w, code, response)
}

// RespondWithRaw sends already-encoded JSON untouched.
func RespondWithRaw(w http.ResponseWriter, code int, body json.RawMessage) {
	writeRaw(w, code, body)
}

func writeRaw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
