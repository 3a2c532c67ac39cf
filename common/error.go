package common

import (
	"encoding/json"
	"net/http"
)

type Error interface {
	error
	HttpStatus() int
}

// Internal Server Error
type InternalError struct{ S string }

func (e *InternalError) Error() string { return e.S }

func (e *InternalError) HttpStatus() int { return http.StatusInternalServerError }

// Not Found
type NotFoundError struct{ S string }

func (e *NotFoundError) Error() string { return e.S }

func (e *NotFoundError) HttpStatus() int { return http.StatusNotFound }

// Conflict (not currently subscribed to a given event source)
type ConflictError struct{ S string }

func (e *ConflictError) Error() string { return e.S }

func (e *ConflictError) HttpStatus() int { return http.StatusConflict }

// Bad Request
type BadRequestError struct{ S string }

func (e *BadRequestError) Error() string { return e.S }

func (e *BadRequestError) HttpStatus() int { return http.StatusBadRequest }

// Unprocessable Entity (invalid or non-existing event source)
type UnprocessableEntityError struct{ S string }

func (e *UnprocessableEntityError) Error() string { return e.S }

func (e *UnprocessableEntityError) HttpStatus() int { return http.StatusUnprocessableEntity }

// ErrorResponse writes error to HTTP ResponseWriter
func ErrorResponse(code int, msg string, w http.ResponseWriter) {
	// Error describes an API error (serializable in JSON)
	type Error struct {
		// Code is the (http) code of the error
		Code int `json:"code"`
		// Message is the (human-readable) error message
		Message string `json:"message"`
	}

	e := &Error{
		code,
		msg,
	}
	b, _ := json.Marshal(e)
	w.Header().Set("Content-Type", "application/json;version="+APIVersion)
	w.WriteHeader(code)
	w.Write(b)
}
