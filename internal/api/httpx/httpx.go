package httpx

import (
	"encoding/json"
	"net/http"
)

// errorEnvelope matches the legacy wire format: a bare {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorEnvelope{Error: message})
}

// SuccessJSON writes {"success": true, "message": ...} plus any extra
// top-level fields the endpoint contract includes.
func SuccessJSON(w http.ResponseWriter, status int, message string, extra map[string]any) {
	body := map[string]any{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	WriteJSON(w, status, body)
}
