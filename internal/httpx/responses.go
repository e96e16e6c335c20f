package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error envelope used across the API: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the confirmation envelope: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorBody{Error: message})
}

func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageBody{Message: message})
}
