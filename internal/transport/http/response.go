package httptransport

import (
	"encoding/json"
	"net/http"

	"resume-tailor-service/internal/service"
)

// envelope is the shared response shape for every endpoint.
type envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
	Pagination *service.Pagination `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, data any, msg string) {
	writeJSON(w, code, envelope{Success: true, Data: data, Message: msg})
}

func writeList(w http.ResponseWriter, data any, pg service.Pagination) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: &pg})
}

func writeErr(w http.ResponseWriter, code int, msg, detail string) {
	writeJSON(w, code, envelope{Success: false, Message: msg, Error: detail})
}
