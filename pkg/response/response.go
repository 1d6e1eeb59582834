// Package response writes the Shallerhub JSON envelope.
//
// Every endpoint answers with the same shape the mobile clients already
// parse: {"success": bool, "message": "...", "data": ...}. Validation
// problems additionally carry an "errors" map of field → message.
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with message and data.
func Success(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 with message and data.
func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Message: message, Data: data})
}

// Error sends a failure envelope with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Message: message})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// BadRequest sends a 400 with a message.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404 with a message.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, message)
}

// ServerError sends a 500. The upstream message is passed through verbatim;
// the clients rely on it today even though it leaks internal detail.
func ServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal Server Error"
	}
	Error(w, http.StatusInternalServerError, message)
}
