package response

import (
	"encoding/json"
	"net/http"
)

// Message is the body of every non-record response
type Message struct {
	Message string `json:"message"`
}

// FieldError is a client-error body naming the offending field
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// Result pairs a status code with the body to encode. Handlers return it so
// every transport (mux, Lambda) renders the same contract.
type Result struct {
	StatusCode int
	Body       interface{}
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Write renders a Result on an http.ResponseWriter
func Write(w http.ResponseWriter, result Result) {
	JSON(w, result.StatusCode, result.Body)
}

func OK(data interface{}) Result {
	return Result{StatusCode: http.StatusOK, Body: data}
}

func MissingField(field string) Result {
	return Result{
		StatusCode: http.StatusBadRequest,
		Body: FieldError{
			Message: "Missing required field: " + field,
			Field:   field,
		},
	}
}

func InvalidField(field, value string) Result {
	return Result{
		StatusCode: http.StatusBadRequest,
		Body: FieldError{
			Message: "Invalid " + field + ": " + value,
			Field:   field,
		},
	}
}

func NotFound(message string) Result {
	if message == "" {
		message = "Resource not found"
	}
	return Result{StatusCode: http.StatusNotFound, Body: Message{Message: message}}
}

func MethodNotAllowed() Result {
	return Result{StatusCode: http.StatusMethodNotAllowed, Body: Message{Message: "Method not allowed"}}
}

// InternalServerError never carries the cause; callers log it instead.
func InternalServerError() Result {
	return Result{StatusCode: http.StatusInternalServerError, Body: Message{Message: "Internal server error"}}
}
