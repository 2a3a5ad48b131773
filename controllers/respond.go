package controllers

import (
	"encoding/json"
	"net/http"
)

// failure classifies everything that can go wrong with a request: client
// input errors, authentication failures, missing records and
// infrastructure errors. Each kind maps to exactly one HTTP status;
// handlers never pick raw status codes. Datastore unavailability is a
// fifth kind rendered by the middleware gate before handlers run.
type failure int

const (
	failBadRequest failure = iota
	failUnauthorized
	failNotFound
	failInternal
)

func (f failure) httpStatus() int {
	switch f {
	case failBadRequest:
		return http.StatusBadRequest
	case failUnauthorized:
		return http.StatusUnauthorized
	case failNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondFailure(w http.ResponseWriter, f failure, message string) {
	respondJSON(w, f.httpStatus(), map[string]string{"message": message})
}

// respondServerError attaches the underlying error message for diagnostics.
func respondServerError(w http.ResponseWriter, err error) {
	respondJSON(w, failInternal.httpStatus(), map[string]string{
		"message": "Server error",
		"error":   err.Error(),
	})
}
