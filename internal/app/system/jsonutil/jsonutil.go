// Package jsonutil reads and writes the JSON bodies used by every API
// handler.
package jsonutil

import (
	"encoding/json"
	"errors"
	"net/http"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// ErrBadBody is returned by Decode for empty, oversized or malformed bodies.
var ErrBadBody = errors.New("Invalid request body")

// Write encodes v with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// Message writes {"message": msg} with 200.
func Message(w http.ResponseWriter, msg string) {
	Write(w, http.StatusOK, map[string]string{"message": msg})
}

// Decode reads a single JSON value from the request body into dst.
// Unknown fields are ignored.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrBadBody
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return ErrBadBody
	}
	return nil
}
